package models

import "time"

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaID   int64     `gorm:"not null;index" json:"mediaId"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	Text      string    `gorm:"not null;type:text" json:"text"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Associations
	User  *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Media *MediaEntry `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;" json:"media,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
