package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pastelpay/landing-api/internal/core/domain"
	"github.com/pastelpay/landing-api/internal/core/ports"
)

// AuthService implements registration and login against the user collection.
type AuthService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

// Register creates a new account. The existence check keeps the fixed
// conflict message cheap; the unique email index closes the remaining
// check-then-insert window, so a concurrent duplicate surfaces from Create
// as domain.ErrEmailTaken as well.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return "", domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		AvatarURL:    nil,
		IsActive:     true,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", id).Msg("user registered")
	return id, nil
}

// Login verifies the password against the stored hash. Unknown email and
// hash mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
