package service

import (
	"errors"
	"fmt"

	"mediarate/internal/api/models"
	"mediarate/internal/api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	// SetRating creates or updates the caller's rating for a media entry in
	// one upsert. A nil comment keeps the stored comment.
	SetRating(userID, mediaID int64, stars int, comment *string) (int64, error)
	Get(id int64) (*models.Rating, error)
	// UpdateByID is the direct edit path, restricted to the rating's owner.
	UpdateByID(actorID, id int64, stars int, comment *string) (*models.Rating, error)
	// ToggleLike flips the caller's like on a rating. Two identical calls
	// cancel out.
	ToggleLike(actorID, ratingID int64) error
	// Confirm marks the caller's own rating as confirmed, one way.
	Confirm(actorID, id int64) error
	Average(mediaID int64) (float64, int64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	mediaRepo  repository.MediaRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, mediaRepo repository.MediaRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		mediaRepo:  mediaRepo,
	}
}

func (s *ratingService) SetRating(userID, mediaID int64, stars int, comment *string) (int64, error) {
	if err := validateStars(stars); err != nil {
		return 0, err
	}

	if _, err := s.mediaRepo.FindByID(mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: media entry", ErrNotFound)
		}
		return 0, err
	}

	return s.ratingRepo.SetRating(userID, mediaID, stars, comment)
}

func (s *ratingService) Get(id int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating", ErrNotFound)
		}
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) UpdateByID(actorID, id int64, stars int, comment *string) (*models.Rating, error) {
	rating, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !owns(actorID, rating.UserID) {
		return nil, ErrForbidden
	}

	if err := validateStars(stars); err != nil {
		return nil, err
	}

	if err := s.ratingRepo.UpdateByID(id, stars, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating", ErrNotFound)
		}
		return nil, err
	}

	return s.Get(id)
}

func (s *ratingService) ToggleLike(actorID, ratingID int64) error {
	if _, err := s.Get(ratingID); err != nil {
		return err
	}
	return s.ratingRepo.ToggleLike(ratingID, actorID)
}

func (s *ratingService) Confirm(actorID, id int64) error {
	rating, err := s.Get(id)
	if err != nil {
		return err
	}
	if !owns(actorID, rating.UserID) {
		return ErrForbidden
	}
	return s.ratingRepo.Confirm(id)
}

func (s *ratingService) Average(mediaID int64) (float64, int64, error) {
	avg, err := s.ratingRepo.AverageRating(mediaID)
	if err != nil {
		return 0, 0, err
	}
	count, err := s.ratingRepo.CountRatings(mediaID)
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

func validateStars(stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}
