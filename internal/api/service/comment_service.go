package service

import (
	"errors"
	"fmt"
	"strings"

	"mediarate/internal/api/models"
	"mediarate/internal/api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	// Create stores a new comment; it always starts unapproved.
	Create(userID, mediaID int64, text string) (*models.Comment, error)
	// ListApproved is the public listing; unapproved comments are invisible.
	ListApproved(mediaID int64) ([]models.Comment, error)
	Update(actorID, id int64, text string) (*models.Comment, error)
	Delete(actorID, id int64) error
	// Approve flips a comment to publicly visible. There is no reverse.
	Approve(id int64) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	mediaRepo   repository.MediaRepository
}

func NewCommentService(commentRepo repository.CommentRepository, mediaRepo repository.MediaRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		mediaRepo:   mediaRepo,
	}
}

func (s *commentService) Create(userID, mediaID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text cannot be empty", ErrValidation)
	}

	if _, err := s.mediaRepo.FindByID(mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: media entry", ErrNotFound)
		}
		return nil, err
	}

	comment := &models.Comment{
		MediaID: mediaID,
		UserID:  userID,
		Text:    text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListApproved(mediaID int64) ([]models.Comment, error) {
	return s.commentRepo.FindApprovedByMedia(mediaID)
}

func (s *commentService) Update(actorID, id int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text cannot be empty", ErrValidation)
	}

	comment, err := s.get(id)
	if err != nil {
		return nil, err
	}
	// Owners may edit regardless of approval state.
	if !owns(actorID, comment.UserID) {
		return nil, ErrForbidden
	}

	if err := s.commentRepo.UpdateText(id, text); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment", ErrNotFound)
		}
		return nil, err
	}

	return s.get(id)
}

func (s *commentService) Delete(actorID, id int64) error {
	comment, err := s.get(id)
	if err != nil {
		return err
	}
	if !owns(actorID, comment.UserID) {
		return ErrForbidden
	}
	return s.commentRepo.Delete(id)
}

func (s *commentService) Approve(id int64) (*models.Comment, error) {
	if err := s.commentRepo.Approve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment", ErrNotFound)
		}
		return nil, err
	}
	return s.get(id)
}

func (s *commentService) get(id int64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment", ErrNotFound)
		}
		return nil, err
	}
	return comment, nil
}
