package repository

import (
	"errors"
	"time"

	"mediarate/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	// SetRating creates or updates the rating one user holds for one media
	// entry. A nil comment preserves the stored comment on update. Returns
	// the row id either way; callers cannot tell create from update.
	SetRating(userID, mediaID int64, stars int, comment *string) (int64, error)
	GetByUserAndMedia(userID, mediaID int64) (*models.Rating, error)
	GetByID(id int64) (*models.Rating, error)
	// UpdateByID is the direct edit path; unlike SetRating it overwrites the
	// comment unconditionally.
	UpdateByID(id int64, stars int, comment *string) error
	Delete(userID, mediaID int64) error
	GetByUser(userID int64) ([]models.Rating, error)
	AverageRating(mediaID int64) (float64, error)
	CountRatings(mediaID int64) (int64, error)
	// ToggleLike flips the (rating, user) membership in rating_likes and
	// keeps the denormalized likes counter in step. Two identical calls are
	// a net no-op.
	ToggleLike(ratingID, userID int64) error
	Confirm(id int64) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) SetRating(userID, mediaID int64, stars int, comment *string) (int64, error) {
	rating := models.Rating{
		UserID:  userID,
		MediaID: mediaID,
		Rating:  stars,
		Comment: comment,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "media_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     stars,
			"comment":    gorm.Expr("COALESCE(excluded.comment, ratings.comment)"),
			"updated_at": time.Now(),
		}),
	}).Create(&rating).Error
	if err != nil {
		return 0, err
	}

	// Drivers without RETURNING on the conflict path leave the id unset.
	if rating.ID == 0 {
		existing, err := r.GetByUserAndMedia(userID, mediaID)
		if err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	return rating.ID, nil
}

func (r *ratingRepository) GetByUserAndMedia(userID, mediaID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND media_id = ?", userID, mediaID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByID(id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) UpdateByID(id int64, stars int, comment *string) error {
	result := r.db.Model(&models.Rating{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rating":  stars,
		"comment": comment,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) Delete(userID, mediaID int64) error {
	result := r.db.Where("user_id = ? AND media_id = ?", userID, mediaID).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByUser(userID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) AverageRating(mediaID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("media_id = ?", mediaID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *ratingRepository) CountRatings(mediaID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("media_id = ?", mediaID).Count(&count).Error
	return count, err
}

func (r *ratingRepository) ToggleLike(ratingID, userID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var like models.RatingLike
		err := tx.Where("rating_id = ? AND user_id = ?", ratingID, userID).First(&like).Error

		switch {
		case err == nil:
			// Unlike: remove the row and decrement, floored at zero.
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return tx.Model(&models.Rating{}).Where("id = ?", ratingID).
				Update("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.RatingLike{RatingID: ratingID, UserID: userID}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Rating{}).Where("id = ?", ratingID).
				Update("likes", gorm.Expr("likes + 1")).Error

		default:
			return err
		}
	})
}

// Confirm is a one-way flip; there is no un-confirm path.
func (r *ratingRepository) Confirm(id int64) error {
	result := r.db.Model(&models.Rating{}).Where("id = ?", id).Update("confirmed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
