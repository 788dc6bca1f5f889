package repository

import (
	"mediarate/internal/api/models"

	"gorm.io/gorm"
)

// MediaFilter carries the optional search parameters of GET /api/media.
// Nil fields are not applied.
type MediaFilter struct {
	Title          *string
	Rating         *int
	UserID         *int64
	Genre          *string
	MediaType      *string
	AgeRestriction *int
}

type MediaRepository interface {
	Create(entry *models.MediaEntry) error
	FindAll() ([]models.MediaEntry, error)
	FindByID(id int64) (*models.MediaEntry, error)
	Update(entry *models.MediaEntry) error
	Delete(id int64) error
	Search(filter MediaFilter) ([]models.MediaEntry, error)
	Leaderboard(limit int) ([]models.LeaderboardEntry, error)
	Recommendations(userID int64, limit int, genre *string) ([]models.RecommendationEntry, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(entry *models.MediaEntry) error {
	return r.db.Create(entry).Error
}

func (r *mediaRepository) FindAll() ([]models.MediaEntry, error) {
	var entries []models.MediaEntry
	if err := r.db.Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mediaRepository) FindByID(id int64) (*models.MediaEntry, error) {
	var entry models.MediaEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mediaRepository) Update(entry *models.MediaEntry) error {
	return r.db.Save(entry).Error
}

func (r *mediaRepository) Delete(id int64) error {
	result := r.db.Delete(&models.MediaEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search applies the present filters conjunctively.
func (r *mediaRepository) Search(filter MediaFilter) ([]models.MediaEntry, error) {
	query := r.db.Model(&models.MediaEntry{})

	if filter.Title != nil && *filter.Title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+*filter.Title+"%")
	}
	if filter.Rating != nil {
		query = query.Where("rating = ?", *filter.Rating)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Genre != nil && *filter.Genre != "" {
		query = query.Where("LOWER(genre) = LOWER(?)", *filter.Genre)
	}
	if filter.MediaType != nil && *filter.MediaType != "" {
		query = query.Where("media_type = ?", *filter.MediaType)
	}
	if filter.AgeRestriction != nil {
		query = query.Where("age_restriction = ?", *filter.AgeRestriction)
	}

	var entries []models.MediaEntry
	if err := query.Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Leaderboard ranks media by average rating, then by how many ratings back
// that average up.
func (r *mediaRepository) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := r.db.Raw(`
		SELECT me.id,
		       me.title,
		       me.rating,
		       me.user_id,
		       COALESCE(AVG(r.rating), 0.0) AS average_rating,
		       COUNT(r.id) AS rating_count
		FROM media_entries me
		LEFT JOIN ratings r ON me.id = r.media_id
		GROUP BY me.id, me.title, me.rating, me.user_id
		ORDER BY average_rating DESC, rating_count DESC
		LIMIT ?`, limit).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Recommendations returns media the user has not rated yet, best rated first.
// When genre is set the candidates are narrowed to that genre.
func (r *mediaRepository) Recommendations(userID int64, limit int, genre *string) ([]models.RecommendationEntry, error) {
	sql := `
		SELECT me.id,
		       me.title,
		       me.rating,
		       me.user_id,
		       COALESCE(AVG(r_all.rating), 0.0) AS average_rating,
		       COUNT(r_all.id) AS rating_count
		FROM media_entries me
		LEFT JOIN ratings r_all ON me.id = r_all.media_id
		WHERE NOT EXISTS (
			SELECT 1 FROM ratings r_user
			WHERE r_user.media_id = me.id AND r_user.user_id = ?
		)`
	args := []interface{}{userID}

	if genre != nil && *genre != "" {
		sql += ` AND LOWER(me.genre) = LOWER(?)`
		args = append(args, *genre)
	}

	sql += `
		GROUP BY me.id, me.title, me.rating, me.user_id
		ORDER BY average_rating DESC, rating_count DESC
		LIMIT ?`
	args = append(args, limit)

	var entries []models.RecommendationEntry
	if err := r.db.Raw(sql, args...).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
