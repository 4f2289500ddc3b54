package ports

import (
	"context"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

// BlogService exposes the public blog listing and the startup seeding step.
type BlogService interface {
	// List returns all published posts, read defaults applied
	// (nil tags become an empty slice).
	List(ctx context.Context) ([]domain.BlogPost, error)
	// SeedExamplePosts inserts the fixed example posts when no published
	// post exists yet, and reports how many were created. Idempotent.
	SeedExamplePosts(ctx context.Context) (int, error)
}
