package dto

import (
	"time"

	"mrp/internal/microservices/http-api/models"
)

// Data Transfer Objects for authentication and profile requests/responses

// CredentialsRequest: payload for registration and login
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse: response payload after successful login
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest: payload for PUT /api/users/me
type UpdateProfileRequest struct {
	Email         *string `json:"email" binding:"omitempty,email"`
	FavoriteGenre *string `json:"favoriteGenre" binding:"omitempty,max=100"`
}

// UserResponse is the public view of a user. Password and token are never part of it.
type UserResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         *string   `json:"email,omitempty"`
	FavoriteGenre *string   `json:"favoriteGenre,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromModelToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FavoriteGenre: u.FavoriteGenre,
		CreatedAt:     u.CreatedAt,
	}
}
