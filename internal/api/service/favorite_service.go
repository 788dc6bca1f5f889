package service

import (
	"errors"
	"fmt"

	"mediarate/internal/api/repository"

	"gorm.io/gorm"
)

type FavoriteService interface {
	// Mark adds the media entry to the user's favorites. The bool reports
	// whether a row was created; false means it was already marked. Both
	// outcomes are successes.
	Mark(userID, mediaID int64) (bool, error)
	// Unmark removes the favorite; an absent pair is ErrNotFound.
	Unmark(userID, mediaID int64) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	mediaRepo    repository.MediaRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, mediaRepo repository.MediaRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		mediaRepo:    mediaRepo,
	}
}

func (s *favoriteService) Mark(userID, mediaID int64) (bool, error) {
	if _, err := s.mediaRepo.FindByID(mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: media entry", ErrNotFound)
		}
		return false, err
	}
	return s.favoriteRepo.Mark(userID, mediaID)
}

func (s *favoriteService) Unmark(userID, mediaID int64) error {
	removed, err := s.favoriteRepo.Unmark(userID, mediaID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: favorite", ErrNotFound)
	}
	return nil
}
