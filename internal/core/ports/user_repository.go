package ports

import (
	"context"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and returns the store-assigned identifier.
	// A unique-email violation maps to domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (string, error)
}
