package repository

import (
	"context"
	"fmt"

	"mrp/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, mediaID int64) error
	Remove(ctx context.Context, userID, mediaID int64) error
	Exists(ctx context.Context, userID, mediaID int64) (bool, error)
	ListMediaIDs(ctx context.Context, userID int64) ([]int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is a no-op when the favorite already exists.
func (r *favoriteRepository) Add(ctx context.Context, userID, mediaID int64) error {
	fav := models.Favorite{UserID: userID, MediaID: mediaID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove is a no-op when there is nothing to remove.
func (r *favoriteRepository) Remove(ctx context.Context, userID, mediaID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, mediaID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *favoriteRepository) ListMediaIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("media_id asc").
		Pluck("media_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites of user %d: %w", userID, err)
	}
	return ids, nil
}
