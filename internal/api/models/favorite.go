package models

import "time"

type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorites_pair" json:"userId"`
	MediaID   int64     `gorm:"not null;uniqueIndex:idx_favorites_pair" json:"mediaId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Associations
	User  *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Media *MediaEntry `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;" json:"media,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
