package ports

import (
	"context"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

// BlogRepository defines persistence for blog posts.
type BlogRepository interface {
	// FindPublished returns all published posts in store-native order.
	// An empty result is not an error.
	FindPublished(ctx context.Context) ([]domain.BlogPost, error)
	Insert(ctx context.Context, post *domain.BlogPost) (string, error)
}
