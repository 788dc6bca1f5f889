package repository

import (
	"mediarate/internal/api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	// FindApprovedByMedia is the public listing; unapproved comments stay
	// invisible until moderation flips them.
	FindApprovedByMedia(mediaID int64) ([]models.Comment, error)
	// FindAllByMedia includes unapproved comments, for moderation views.
	FindAllByMedia(mediaID int64) ([]models.Comment, error)
	FindByID(id int64) (*models.Comment, error)
	UpdateText(id int64, text string) error
	Approve(id int64) error
	Delete(id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a comment. Approved is left at its zero value; every new
// comment awaits moderation.
func (r *commentRepository) Create(comment *models.Comment) error {
	comment.Approved = false
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindApprovedByMedia(mediaID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("media_id = ? AND approved = ?", mediaID, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindAllByMedia(mediaID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("media_id = ?", mediaID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindByID(id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) UpdateText(id int64, text string) error {
	result := r.db.Model(&models.Comment{}).Where("id = ?", id).Update("text", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Approve is one-way; nothing exposes the reverse flip.
func (r *commentRepository) Approve(id int64) error {
	result := r.db.Model(&models.Comment{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
