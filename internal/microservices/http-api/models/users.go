package models

import (
	"time"
)

type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	Email         *string   `gorm:"size:255" json:"email,omitempty"`
	FavoriteGenre *string   `gorm:"size:100" json:"favoriteGenre,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	// most recently issued session token; a new login overwrites it
	Token *string `gorm:"size:500;uniqueIndex" json:"-"`
}

func (User) TableName() string {
	return "users"
}
