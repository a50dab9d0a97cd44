package repository

import (
	"context"
	"errors"
	"fmt"

	"mrp/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	GetByUserAndMedia(ctx context.Context, userID, mediaID int64) (*models.Rating, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]models.Rating, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	// Upsert stores the user's only rating for the media and refreshes the media average.
	// created reports whether a new row was inserted.
	Upsert(ctx context.Context, rating *models.Rating) (created bool, err error)
	Delete(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64) error
	// AddLike inserts the (rating, user) like if absent and returns the recomputed count.
	AddLike(ctx context.Context, ratingID, userID int64) (int, error)
	HasLiked(ctx context.Context, ratingID, userID int64) (bool, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, fmt.Errorf("get rating %d: %w", id, err)
	}
	return &rating, nil
}

func (r *ratingRepository) GetByUserAndMedia(ctx context.Context, userID, mediaID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).Where("user_id = ? AND media_id = ?", userID, mediaID).First(&rating).Error
	if err != nil {
		return nil, fmt.Errorf("get rating of user %d for media %d: %w", userID, mediaID, err)
	}
	return &rating, nil
}

func (r *ratingRepository) ListByMedia(ctx context.Context, mediaID int64) ([]models.Rating, error) {
	ratings := make([]models.Rating, 0)
	err := r.db.WithContext(ctx).Where("media_id = ?", mediaID).
		Order("timestamp desc").Order("id desc").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("list ratings of media %d: %w", mediaID, err)
	}
	return ratings, nil
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	ratings := make([]models.Rating, 0)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("timestamp desc").Order("id desc").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("list ratings of user %d: %w", userID, err)
	}
	return ratings, nil
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("user_id = ? AND media_id = ?", rating.UserID, rating.MediaID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating.Confirmed = false
			rating.Likes = 0
			if err := tx.Create(rating).Error; err != nil {
				return fmt.Errorf("create rating: %w", err)
			}
			created = true
		case err != nil:
			return fmt.Errorf("find rating: %w", err)
		default:
			// a changed comment has to be approved again
			if !sameComment(existing.Comment, rating.Comment) {
				existing.Confirmed = false
			}
			existing.Stars = rating.Stars
			existing.Comment = rating.Comment
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("update rating %d: %w", existing.ID, err)
			}
			*rating = existing
		}
		return refreshAverageScore(tx, rating.MediaID)
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rating models.Rating
		if err := tx.First(&rating, id).Error; err != nil {
			return fmt.Errorf("get rating %d: %w", id, err)
		}
		if err := tx.Where("rating_id = ?", id).Delete(&models.RatingLike{}).Error; err != nil {
			return fmt.Errorf("delete likes of rating %d: %w", id, err)
		}
		if err := tx.Delete(&models.Rating{}, id).Error; err != nil {
			return fmt.Errorf("delete rating %d: %w", id, err)
		}
		return refreshAverageScore(tx, rating.MediaID)
	})
}

func (r *ratingRepository) Confirm(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&models.Rating{}).Where("id = ?", id).Update("confirmed", true)
	if result.Error != nil {
		return fmt.Errorf("confirm rating %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("confirm rating %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *ratingRepository) AddLike(ctx context.Context, ratingID, userID int64) (int, error) {
	var likes int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := models.RatingLike{RatingID: ratingID, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return fmt.Errorf("insert like: %w", err)
		}
		if err := tx.Model(&models.RatingLike{}).Where("rating_id = ?", ratingID).Count(&likes).Error; err != nil {
			return fmt.Errorf("count likes: %w", err)
		}
		if err := tx.Model(&models.Rating{}).Where("id = ?", ratingID).Update("likes", likes).Error; err != nil {
			return fmt.Errorf("update like counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(likes), nil
}

func (r *ratingRepository) HasLiked(ctx context.Context, ratingID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RatingLike{}).
		Where("rating_id = ? AND user_id = ?", ratingID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return count > 0, nil
}

// refreshAverageScore recomputes media.average_score from its ratings
func refreshAverageScore(tx *gorm.DB, mediaID int64) error {
	var avg struct {
		Average float64
	}
	err := tx.Model(&models.Rating{}).
		Select("COALESCE(AVG(stars), 0) as average").
		Where("media_id = ?", mediaID).
		Scan(&avg).Error
	if err != nil {
		return fmt.Errorf("calculate average score: %w", err)
	}
	if err := tx.Model(&models.MediaEntry{}).Where("id = ?", mediaID).Update("average_score", avg.Average).Error; err != nil {
		return fmt.Errorf("update average score: %w", err)
	}
	return nil
}

func sameComment(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
