package dto

import (
	"time"

	"mrp/internal/microservices/http-api/models"
)

// RateRequest for creating or updating the caller's rating of a media entry
type RateRequest struct {
	Stars   int     `json:"stars" binding:"required,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	MediaID   int64     `json:"mediaId"`
	Stars     int       `json:"stars"`
	Comment   *string   `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Confirmed bool      `json:"confirmed"`
}

// LikeResponse carries the recomputed like counter
type LikeResponse struct {
	RatingID int64 `json:"ratingId"`
	Likes    int   `json:"likes"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO.
// The comment is withheld until the media creator confirmed it unless showComment is set.
func FromModelToRatingResponse(r *models.Rating, showComment bool) RatingResponse {
	resp := RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		MediaID:   r.MediaID,
		Stars:     r.Stars,
		Timestamp: r.Timestamp,
		Likes:     r.Likes,
		Confirmed: r.Confirmed,
	}
	if r.Confirmed || showComment {
		resp.Comment = r.Comment
	}
	return resp
}

func FromModelsToRatingResponses(list []models.Rating, showComments bool) []RatingResponse {
	resp := make([]RatingResponse, 0, len(list))
	for i := range list {
		resp = append(resp, FromModelToRatingResponse(&list[i], showComments))
	}
	return resp
}

// MessageResponse is a plain acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
