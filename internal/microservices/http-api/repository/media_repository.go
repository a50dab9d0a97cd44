package repository

import (
	"context"
	"fmt"

	"mrp/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// MediaRepository defines persistence for media entries.
type MediaRepository interface {
	Create(ctx context.Context, m *models.MediaEntry) error
	GetByID(ctx context.Context, id int64) (*models.MediaEntry, error)
	List(ctx context.Context) ([]models.MediaEntry, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.MediaEntry, error)
	Update(ctx context.Context, id int64, m *models.MediaEntry) error
	DeleteWithRatings(ctx context.Context, id int64) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, m *models.MediaEntry) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create media: %w", err)
	}
	// GORM populates m.ID and m.CreatedAt
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaEntry, error) {
	var m models.MediaEntry
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("get media %d: %w", id, err)
	}
	return &m, nil
}

func (r *mediaRepository) List(ctx context.Context) ([]models.MediaEntry, error) {
	list := make([]models.MediaEntry, 0)
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return list, nil
}

func (r *mediaRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.MediaEntry, error) {
	list := make([]models.MediaEntry, 0, len(ids))
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list media by ids: %w", err)
	}
	return list, nil
}

// Update replaces the content fields of a media entry. Ownership, creation time and the
// derived average score are never touched.
func (r *mediaRepository) Update(ctx context.Context, id int64, m *models.MediaEntry) error {
	m.ID = id
	result := r.db.WithContext(ctx).Model(&models.MediaEntry{ID: id}).
		Select("title", "description", "media_type", "release_year", "genres", "age_restriction").
		Updates(m)
	if result.Error != nil {
		return fmt.Errorf("update media %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update media %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteWithRatings removes a media entry together with everything that references it,
// dependents first, inside one transaction.
func (r *mediaRepository) DeleteWithRatings(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ratingIDs := tx.Model(&models.Rating{}).Select("id").Where("media_id = ?", id)
		if err := tx.Where("rating_id IN (?)", ratingIDs).Delete(&models.RatingLike{}).Error; err != nil {
			return fmt.Errorf("delete rating likes of media %d: %w", id, err)
		}
		if err := tx.Where("media_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("delete ratings of media %d: %w", id, err)
		}
		if err := tx.Where("media_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("delete favorites of media %d: %w", id, err)
		}
		result := tx.Delete(&models.MediaEntry{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete media %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("delete media %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil
	})
}
