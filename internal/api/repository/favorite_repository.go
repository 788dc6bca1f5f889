package repository

import (
	"mediarate/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	// Mark inserts the (user, media) pair if absent. The returned bool says
	// whether a new row was created; false means it was already a favorite.
	// Both are success outcomes.
	Mark(userID, mediaID int64) (bool, error)
	// Unmark deletes the pair if present and reports whether a row went away.
	Unmark(userID, mediaID int64) (bool, error)
	IsFavorite(userID, mediaID int64) (bool, error)
	// ListMedia returns the favorite media entries of a user, newest mark first.
	ListMedia(userID int64) ([]models.MediaEntry, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Mark(userID, mediaID int64) (bool, error) {
	favorite := models.Favorite{UserID: userID, MediaID: mediaID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "media_id"}},
		DoNothing: true,
	}).Create(&favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *favoriteRepository) Unmark(userID, mediaID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND media_id = ?", userID, mediaID).Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *favoriteRepository) IsFavorite(userID, mediaID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) ListMedia(userID int64) ([]models.MediaEntry, error) {
	var entries []models.MediaEntry
	err := r.db.Model(&models.MediaEntry{}).
		Joins("JOIN favorites f ON f.media_id = media_entries.id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
