package dto

import (
	"strings"
	"time"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/models"
)

// MediaRequest is the body of POST /api/media and PUT /api/media/:id.
// id, creatorId and averageScore are server-controlled and not bindable.
type MediaRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MediaType      string   `json:"mediaType"`
	ReleaseYear    *int     `json:"releaseYear"`
	Genres         []string `json:"genres"`
	AgeRestriction *int     `json:"ageRestriction"`
}

// MediaResponse DTO for responses
type MediaResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	MediaType      string    `json:"mediaType"`
	ReleaseYear    *int      `json:"releaseYear,omitempty"`
	Genres         []string  `json:"genres"`
	AgeRestriction *int      `json:"ageRestriction,omitempty"`
	CreatorID      int64     `json:"creatorId"`
	AverageScore   float64   `json:"averageScore"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Converters
func (d MediaRequest) ToModel() models.MediaEntry {
	genres := make([]string, 0, len(d.Genres))
	genres = append(genres, d.Genres...)
	return models.MediaEntry{
		Title:          d.Title,
		Description:    d.Description,
		MediaType:      d.MediaType,
		ReleaseYear:    d.ReleaseYear,
		Genres:         genres,
		AgeRestriction: d.AgeRestriction,
	}
}

func FromModelToMediaResponse(m *models.MediaEntry) MediaResponse {
	genres := []string(m.Genres)
	if genres == nil {
		genres = []string{}
	}
	return MediaResponse{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		MediaType:      m.MediaType,
		ReleaseYear:    m.ReleaseYear,
		Genres:         genres,
		AgeRestriction: m.AgeRestriction,
		CreatorID:      m.CreatorID,
		AverageScore:   m.AverageScore,
		CreatedAt:      m.CreatedAt,
	}
}

func FromModelsToMediaResponses(list []models.MediaEntry) []MediaResponse {
	resp := make([]MediaResponse, 0, len(list))
	for i := range list {
		resp = append(resp, FromModelToMediaResponse(&list[i]))
	}
	return resp
}

// Validate checks the fields a media entry cannot be stored without.
func (d MediaRequest) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return apperror.Validation("Title is required")
	}
	if d.ReleaseYear != nil && *d.ReleaseYear < 0 {
		return apperror.Validation("Release year cannot be negative")
	}
	if d.AgeRestriction != nil && *d.AgeRestriction < 0 {
		return apperror.Validation("Age restriction cannot be negative")
	}
	return nil
}
