package models

import (
	"time"

	"gorm.io/datatypes"
)

type MediaEntry struct {
	ID             int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string                      `json:"title" gorm:"size:500;not null"`
	Description    string                      `json:"description" gorm:"type:text"`
	MediaType      string                      `json:"mediaType" gorm:"size:50"`
	ReleaseYear    *int                        `json:"releaseYear,omitempty"`
	Genres         datatypes.JSONSlice[string] `json:"genres"`
	AgeRestriction *int                        `json:"ageRestriction,omitempty"`
	CreatorID      int64                       `json:"creatorId" gorm:"not null;index"`
	AverageScore   float64                     `json:"averageScore" gorm:"type:decimal(3,2);not null;default:0"`
	CreatedAt      time.Time                   `json:"createdAt" gorm:"autoCreateTime"`

	// association
	Creator *User `json:"-" gorm:"foreignKey:CreatorID"`
}

func (MediaEntry) TableName() string {
	return "media"
}
