package repository

import (
	"context"
	"fmt"

	"mrp/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
// Lookups return gorm.ErrRecordNotFound (wrapped) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByToken(ctx context.Context, token string) (*models.User, error)
	UpdateToken(ctx context.Context, userID int64, token string) error
	UpdateProfile(ctx context.Context, userID int64, email, favoriteGenre *string) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	// return nil on error, a zero-value user would look like a match
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user by token: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateToken(ctx context.Context, userID int64, token string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("token", token)
	if result.Error != nil {
		return fmt.Errorf("update token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update token for user %d: %w", userID, gorm.ErrRecordNotFound)
	}
	return nil
}

// UpdateProfile writes only the fields that are non-nil; omitted fields keep their value.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, email, favoriteGenre *string) error {
	updates := map[string]any{}
	if email != nil {
		updates["email"] = *email
	}
	if favoriteGenre != nil {
		updates["favorite_genre"] = *favoriteGenre
	}
	if len(updates) == 0 {
		_, err := r.FindByID(ctx, userID)
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update profile for user %d: %w", userID, gorm.ErrRecordNotFound)
	}
	return nil
}
