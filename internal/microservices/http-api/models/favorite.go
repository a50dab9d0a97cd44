package models

import "time"

// Favorite marks a media entry as favorited by a user.
type Favorite struct {
	UserID    int64     `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	MediaID   int64     `json:"mediaId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	User  *User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Media *MediaEntry `json:"-" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// All lists every model in migration order.
func All() []any {
	return []any{&User{}, &MediaEntry{}, &Rating{}, &Favorite{}, &RatingLike{}}
}
