package service

import (
	"context"
	"fmt"
	"log/slog"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/models"
	"mrp/internal/microservices/http-api/repository"
)

type MediaService interface {
	Create(ctx context.Context, m *models.MediaEntry, creatorID int64) (*models.MediaEntry, error)
	GetByID(ctx context.Context, id int64) (*models.MediaEntry, error)
	GetAll(ctx context.Context) ([]models.MediaEntry, error)
	Update(ctx context.Context, id int64, m *models.MediaEntry, requesterID int64) error
	Delete(ctx context.Context, id int64, requesterID int64) error
}

type mediaService struct {
	repo   repository.MediaRepository
	logger *slog.Logger
}

func NewMediaService(repo repository.MediaRepository, logger *slog.Logger) MediaService {
	if logger == nil {
		logger = slog.Default()
	}
	return &mediaService{repo: repo, logger: logger.With("component", "media")}
}

// Create stores m owned by creatorID, whatever creator the input carried.
func (s *mediaService) Create(ctx context.Context, m *models.MediaEntry, creatorID int64) (*models.MediaEntry, error) {
	m.ID = 0
	m.CreatorID = creatorID
	m.AverageScore = 0
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperror.Internal(err)
	}
	s.logger.Info("media created", "media_id", m.ID, "creator_id", creatorID)
	return m, nil
}

func (s *mediaService) GetByID(ctx context.Context, id int64) (*models.MediaEntry, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, mediaNotFound(id)
		}
		return nil, apperror.Internal(err)
	}
	return m, nil
}

func (s *mediaService) GetAll(ctx context.Context) ([]models.MediaEntry, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

// Update replaces the content of media id. Only its creator may do so.
func (s *mediaService) Update(ctx context.Context, id int64, m *models.MediaEntry, requesterID int64) error {
	if _, err := s.requireOwner(ctx, id, requesterID, "update"); err != nil {
		return err
	}

	m.ID = id
	if err := s.repo.Update(ctx, id, m); err != nil {
		if repository.IsNotFound(err) {
			return mediaNotFound(id)
		}
		return apperror.Internal(err)
	}
	s.logger.Info("media updated", "media_id", id, "user_id", requesterID)
	return nil
}

// Delete removes media id and its ratings. Only its creator may do so.
func (s *mediaService) Delete(ctx context.Context, id int64, requesterID int64) error {
	if _, err := s.requireOwner(ctx, id, requesterID, "delete"); err != nil {
		return err
	}

	if err := s.repo.DeleteWithRatings(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return mediaNotFound(id)
		}
		return apperror.Internal(err)
	}
	s.logger.Info("media deleted", "media_id", id, "user_id", requesterID)
	return nil
}

// requireOwner loads media id and checks requesterID created it.
// Existence is checked first so nothing is revealed about missing entries.
func (s *mediaService) requireOwner(ctx context.Context, id, requesterID int64, action string) (*models.MediaEntry, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatorID != requesterID {
		return nil, apperror.Authorization(fmt.Sprintf("User is not authorized to %s this media entry.", action))
	}
	return existing, nil
}

func mediaNotFound(id int64) error {
	return apperror.NotFound(fmt.Sprintf("Media with ID %d not found.", id))
}
