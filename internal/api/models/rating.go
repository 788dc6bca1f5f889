package models

import "time"

type Rating struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_ratings_user_media" json:"userId"`
	MediaID   int64     `gorm:"not null;uniqueIndex:idx_ratings_user_media" json:"mediaId"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Confirmed bool      `gorm:"not null;default:false" json:"confirmed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Associations
	User  *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Media *MediaEntry `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;" json:"media,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
