package models

import "time"

type MediaEntry struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Rating         int       `gorm:"not null;default:0;check:rating >= 0 AND rating <= 10" json:"rating"`
	UserID         int64     `gorm:"not null;index" json:"userId"`
	Genre          *string   `json:"genre,omitempty"`
	MediaType      *string   `gorm:"column:media_type" json:"mediaType,omitempty"`
	AgeRestriction *int      `gorm:"column:age_restriction" json:"ageRestriction,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (MediaEntry) TableName() string {
	return "media_entries"
}

// LeaderboardEntry is the aggregate row behind /api/leaderboard.
type LeaderboardEntry struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Rating        int     `json:"rating"`
	UserID        int64   `json:"userId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
}

// RecommendationEntry is the aggregate row behind /api/recommendations.
type RecommendationEntry struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Rating        int     `json:"rating"`
	UserID        int64   `json:"userId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
}
