package service

import (
	"context"
	"fmt"
	"log/slog"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/models"
	"mrp/internal/microservices/http-api/repository"
)

const (
	MinStars = 1
	MaxStars = 5
)

type RatingService interface {
	// Rate creates the user's rating for a media entry or replaces an existing one.
	Rate(ctx context.Context, mediaID, userID int64, stars int, comment *string) (*models.Rating, bool, error)
	GetMediaRatings(ctx context.Context, mediaID int64) ([]models.Rating, error)
	GetUserRatings(ctx context.Context, userID int64) ([]models.Rating, error)
	ConfirmComment(ctx context.Context, ratingID, requesterID int64) (*models.Rating, error)
	LikeRating(ctx context.Context, ratingID, userID int64) (int, error)
	DeleteRating(ctx context.Context, ratingID, requesterID int64) error
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	mediaRepo  repository.MediaRepository
	logger     *slog.Logger
}

func NewRatingService(ratingRepo repository.RatingRepository, mediaRepo repository.MediaRepository, logger *slog.Logger) RatingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ratingService{
		ratingRepo: ratingRepo,
		mediaRepo:  mediaRepo,
		logger:     logger.With("component", "rating"),
	}
}

func (s *ratingService) Rate(ctx context.Context, mediaID, userID int64, stars int, comment *string) (*models.Rating, bool, error) {
	if stars < MinStars || stars > MaxStars {
		return nil, false, apperror.Validation(fmt.Sprintf("Stars must be between %d and %d", MinStars, MaxStars))
	}
	if err := s.requireMedia(ctx, mediaID); err != nil {
		return nil, false, err
	}

	rating := &models.Rating{
		UserID:  userID,
		MediaID: mediaID,
		Stars:   stars,
		Comment: comment,
	}
	created, err := s.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, false, apperror.Conflict("Rating was submitted concurrently, retry the request")
		}
		return nil, false, apperror.Internal(err)
	}

	s.logger.Info("media rated", "media_id", mediaID, "user_id", userID, "stars", stars, "created", created)
	return rating, created, nil
}

func (s *ratingService) GetMediaRatings(ctx context.Context, mediaID int64) ([]models.Rating, error) {
	if err := s.requireMedia(ctx, mediaID); err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.ListByMedia(ctx, mediaID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return ratings, nil
}

func (s *ratingService) GetUserRatings(ctx context.Context, userID int64) ([]models.Rating, error) {
	ratings, err := s.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return ratings, nil
}

// ConfirmComment approves a rating's comment. Only the creator of the rated media may confirm.
func (s *ratingService) ConfirmComment(ctx context.Context, ratingID, requesterID int64) (*models.Rating, error) {
	rating, err := s.getRating(ctx, ratingID)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaRepo.GetByID(ctx, rating.MediaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, mediaNotFound(rating.MediaID)
		}
		return nil, apperror.Internal(err)
	}
	if media.CreatorID != requesterID {
		return nil, apperror.Authorization("Only the creator of the media entry can confirm comments.")
	}

	if err := s.ratingRepo.Confirm(ctx, ratingID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ratingNotFound(ratingID)
		}
		return nil, apperror.Internal(err)
	}
	rating.Confirmed = true
	return rating, nil
}

// LikeRating records that userID likes the rating. Repeated likes do not count twice.
func (s *ratingService) LikeRating(ctx context.Context, ratingID, userID int64) (int, error) {
	if _, err := s.getRating(ctx, ratingID); err != nil {
		return 0, err
	}
	likes, err := s.ratingRepo.AddLike(ctx, ratingID, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return likes, nil
}

// DeleteRating removes a rating. Only its author may delete it.
func (s *ratingService) DeleteRating(ctx context.Context, ratingID, requesterID int64) error {
	rating, err := s.getRating(ctx, ratingID)
	if err != nil {
		return err
	}
	if rating.UserID != requesterID {
		return apperror.Authorization("User is not authorized to delete this rating.")
	}
	if err := s.ratingRepo.Delete(ctx, ratingID); err != nil {
		if repository.IsNotFound(err) {
			return ratingNotFound(ratingID)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (s *ratingService) getRating(ctx context.Context, ratingID int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ratingNotFound(ratingID)
		}
		return nil, apperror.Internal(err)
	}
	return rating, nil
}

func (s *ratingService) requireMedia(ctx context.Context, mediaID int64) error {
	if _, err := s.mediaRepo.GetByID(ctx, mediaID); err != nil {
		if repository.IsNotFound(err) {
			return mediaNotFound(mediaID)
		}
		return apperror.Internal(err)
	}
	return nil
}

func ratingNotFound(id int64) error {
	return apperror.NotFound(fmt.Sprintf("Rating with ID %d not found.", id))
}
