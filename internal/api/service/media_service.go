package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mediarate/internal/api/models"
	"mediarate/internal/api/repository"

	"gorm.io/gorm"
)

// MediaInput carries the writable fields of a media entry. Nil pointers mean
// "not supplied".
type MediaInput struct {
	Title          string
	Rating         *int
	Genre          *string
	MediaType      *string
	AgeRestriction *int
	ReleaseYear    *int
}

var validMediaTypes = map[string]bool{
	"movie":  true,
	"series": true,
	"book":   true,
	"game":   true,
}

var validAgeRestrictions = map[int]bool{
	0: true, 6: true, 12: true, 16: true, 18: true,
}

type MediaService interface {
	Create(userID int64, input MediaInput) (*models.MediaEntry, error)
	List(filter repository.MediaFilter) ([]models.MediaEntry, error)
	Get(id int64) (*models.MediaEntry, error)
	Update(actorID, id int64, input MediaInput) (*models.MediaEntry, error)
	Delete(actorID, id int64) error
	Leaderboard(limit int) ([]models.LeaderboardEntry, error)
}

type mediaService struct {
	mediaRepo repository.MediaRepository
}

func NewMediaService(mediaRepo repository.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

func (s *mediaService) Create(userID int64, input MediaInput) (*models.MediaEntry, error) {
	if err := validateMediaInput(input); err != nil {
		return nil, err
	}

	rating := 0
	if input.Rating != nil {
		rating = *input.Rating
	}

	entry := &models.MediaEntry{
		Title:          input.Title,
		Rating:         rating,
		UserID:         userID,
		Genre:          input.Genre,
		MediaType:      input.MediaType,
		AgeRestriction: input.AgeRestriction,
	}
	if err := s.mediaRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *mediaService) List(filter repository.MediaFilter) ([]models.MediaEntry, error) {
	if filter == (repository.MediaFilter{}) {
		return s.mediaRepo.FindAll()
	}
	return s.mediaRepo.Search(filter)
}

func (s *mediaService) Get(id int64) (*models.MediaEntry, error) {
	entry, err := s.mediaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: media entry", ErrNotFound)
		}
		return nil, err
	}
	return entry, nil
}

func (s *mediaService) Update(actorID, id int64, input MediaInput) (*models.MediaEntry, error) {
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !owns(actorID, entry.UserID) {
		return nil, ErrForbidden
	}

	if err := validateMediaInput(input); err != nil {
		return nil, err
	}

	entry.Title = input.Title
	if input.Rating != nil {
		entry.Rating = *input.Rating
	}
	if input.Genre != nil {
		entry.Genre = input.Genre
	}
	if input.MediaType != nil {
		entry.MediaType = input.MediaType
	}
	if input.AgeRestriction != nil {
		entry.AgeRestriction = input.AgeRestriction
	}

	if err := s.mediaRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *mediaService) Delete(actorID, id int64) error {
	entry, err := s.Get(id)
	if err != nil {
		return err
	}
	if !owns(actorID, entry.UserID) {
		return ErrForbidden
	}
	return s.mediaRepo.Delete(id)
}

func (s *mediaService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.mediaRepo.Leaderboard(limit)
}

func validateMediaInput(input MediaInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 10) {
		return fmt.Errorf("%w: rating must be between 0 and 10", ErrValidation)
	}
	if input.MediaType != nil && !validMediaTypes[*input.MediaType] {
		return fmt.Errorf("%w: type must be one of movie, series, book, game", ErrValidation)
	}
	if input.AgeRestriction != nil && !validAgeRestrictions[*input.AgeRestriction] {
		return fmt.Errorf("%w: ageRestriction must be one of 0, 6, 12, 16, 18", ErrValidation)
	}
	if input.ReleaseYear != nil {
		currentYear := time.Now().Year()
		if *input.ReleaseYear < 1900 || *input.ReleaseYear > currentYear+1 {
			return fmt.Errorf("%w: releaseYear must be between 1900 and %d", ErrValidation, currentYear+1)
		}
	}
	return nil
}
