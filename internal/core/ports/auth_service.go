package ports

import (
	"context"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

// AuthService implements session-less registration and login.
type AuthService interface {
	// Register creates an account and returns its identifier.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login verifies credentials. Unknown email and wrong password both
	// return domain.ErrInvalidCredentials so callers cannot tell which
	// check failed.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
