package service

import (
	"errors"
	"fmt"
	"strings"

	"mediarate/internal/api/models"
	"mediarate/internal/api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	Profile(userID int64) (*models.User, error)
	// UpdateProfile overwrites the caller's email and favorite genre.
	UpdateProfile(userID int64, email, favoriteGenre *string) (*models.User, error)
	Ratings(userID int64) ([]models.Rating, error)
	Favorites(userID int64) ([]models.MediaEntry, error)
	Recommendations(userID int64, limit int, recType string) ([]models.RecommendationEntry, error)
	Exists(userID int64) (bool, error)
}

type userService struct {
	userRepo     repository.UserRepository
	ratingRepo   repository.RatingRepository
	favoriteRepo repository.FavoriteRepository
	mediaRepo    repository.MediaRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	favoriteRepo repository.FavoriteRepository,
	mediaRepo repository.MediaRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		favoriteRepo: favoriteRepo,
		mediaRepo:    mediaRepo,
	}
}

func (s *userService) Profile(userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID int64, email, favoriteGenre *string) (*models.User, error) {
	if email != nil && *email != "" && !validEmail(*email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	if err := s.userRepo.UpdateProfile(userID, email, favoriteGenre); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}

	return s.userRepo.FindByID(userID)
}

func (s *userService) Ratings(userID int64) ([]models.Rating, error) {
	return s.ratingRepo.GetByUser(userID)
}

func (s *userService) Favorites(userID int64) ([]models.MediaEntry, error) {
	return s.favoriteRepo.ListMedia(userID)
}

// Recommendations returns unrated media for the user. recType "genre" narrows
// candidates to the user's favorite genre; "content" is the plain ranking.
func (s *userService) Recommendations(userID int64, limit int, recType string) ([]models.RecommendationEntry, error) {
	if recType == "" {
		recType = "content"
	}
	recType = strings.ToLower(recType)
	if recType != "content" && recType != "genre" {
		return nil, fmt.Errorf("%w: type must be 'genre' or 'content'", ErrValidation)
	}
	if limit <= 0 {
		limit = 10
	}

	var genre *string
	if recType == "genre" {
		user, err := s.userRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: user", ErrNotFound)
			}
			return nil, err
		}
		genre = user.FavoriteGenre
	}

	return s.mediaRepo.Recommendations(userID, limit, genre)
}

func (s *userService) Exists(userID int64) (bool, error) {
	_, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// validEmail checks the bare minimum: an @ that is neither first nor last.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
