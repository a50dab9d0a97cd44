package service

import (
	"context"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/models"
	"mrp/internal/microservices/http-api/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, mediaID int64) error
	Remove(ctx context.Context, userID, mediaID int64) error
	List(ctx context.Context, userID int64) ([]models.MediaEntry, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	mediaRepo    repository.MediaRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, mediaRepo repository.MediaRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, mediaRepo: mediaRepo}
}

// Add favorites a media entry; favoriting twice is not an error.
func (s *favoriteService) Add(ctx context.Context, userID, mediaID int64) error {
	if _, err := s.mediaRepo.GetByID(ctx, mediaID); err != nil {
		if repository.IsNotFound(err) {
			return mediaNotFound(mediaID)
		}
		return apperror.Internal(err)
	}
	if err := s.favoriteRepo.Add(ctx, userID, mediaID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Remove unfavorites a media entry; removing an absent favorite is not an error.
func (s *favoriteService) Remove(ctx context.Context, userID, mediaID int64) error {
	if err := s.favoriteRepo.Remove(ctx, userID, mediaID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *favoriteService) List(ctx context.Context, userID int64) ([]models.MediaEntry, error) {
	ids, err := s.favoriteRepo.ListMediaIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	list, err := s.mediaRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}
