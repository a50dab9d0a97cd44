package models

import "time"

type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:idx_ratings_user_media"`
	MediaID   int64     `json:"mediaId" gorm:"not null;index;uniqueIndex:idx_ratings_user_media"`
	Stars     int       `json:"stars" gorm:"not null;check:stars >= 1 AND stars <= 5"`
	Comment   *string   `json:"comment,omitempty" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
	// derived from rating_likes, never written directly by clients
	Likes     int  `json:"likes" gorm:"not null;default:0"`
	Confirmed bool `json:"confirmed" gorm:"not null;default:false"`

	// Associations
	User  *User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Media *MediaEntry `json:"-" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingLike records that a user liked a rating. The pair is the primary key.
type RatingLike struct {
	RatingID int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64 `gorm:"primaryKey;autoIncrement:false"`

	Rating *Rating `gorm:"foreignKey:RatingID;constraint:OnDelete:CASCADE;"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (RatingLike) TableName() string {
	return "rating_likes"
}
