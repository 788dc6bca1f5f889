package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mediarate/internal/api/auth"
	"mediarate/internal/api/models"
	"mediarate/internal/api/repository"
	"mediarate/internal/api/token"

	"gorm.io/gorm"
)

const minPasswordLength = 4

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, rawToken string) error
	// Authorize resolves an Authorization header value to a user id.
	// A missing header or one without the bearer prefix is ErrUnauthorized;
	// a present token that fails verification is ErrForbidden.
	Authorize(ctx context.Context, headerValue string) (int64, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   token.Store
}

func NewAuthService(userRepo repository.UserRepository, tokens token.Store) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password too short", ErrValidation)
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		Username:     username,
		PasswordHash: auth.Hash(password),
	}
	if err := s.userRepo.Create(user); err != nil {
		// The unique constraint backstops the preflight check under
		// concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if auth.Hash(password) != user.PasswordHash {
		return "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(ctx, user.ID, user.Username)
	if err != nil {
		return "", err
	}
	return tok, nil
}

func (s *authService) Logout(ctx context.Context, rawToken string) error {
	return s.tokens.Revoke(ctx, rawToken)
}

func (s *authService) Authorize(ctx context.Context, headerValue string) (int64, error) {
	if !strings.HasPrefix(headerValue, "Bearer ") {
		return 0, ErrUnauthorized
	}
	userID, ok := s.tokens.Verify(ctx, headerValue)
	if !ok {
		return 0, ErrForbidden
	}
	return userID, nil
}
