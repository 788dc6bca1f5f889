package models

import "time"

// RatingLike records one user's like of one rating. The ratings.likes counter
// is kept consistent with this table inside the toggle transaction.
type RatingLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RatingID  int64     `gorm:"not null;uniqueIndex:idx_rating_likes_pair" json:"ratingId"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_rating_likes_pair" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (RatingLike) TableName() string {
	return "rating_likes"
}
