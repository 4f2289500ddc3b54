package ports

import (
	"context"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

// ContactRepository defines persistence for contact-form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) (string, error)
}
