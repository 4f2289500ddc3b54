package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pastelpay/landing-api/internal/core/domain"
	"github.com/pastelpay/landing-api/internal/core/ports"
)

// BlogService reads published posts and owns the one-time example seeding.
type BlogService struct {
	repo ports.BlogRepository
	log  zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, log: log}
}

// List returns every published post in store-native order.
func (s *BlogService) List(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Tags == nil {
			posts[i].Tags = []string{}
		}
	}
	return posts, nil
}

// SeedExamplePosts inserts the two example posts when the published
// collection is empty. Called once at startup so the listing endpoint
// stays a pure read.
func (s *BlogService) SeedExamplePosts(ctx context.Context) (int, error) {
	existing, err := s.repo.FindPublished(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, post := range examplePosts() {
		if _, err := s.repo.Insert(ctx, &post); err != nil {
			return seeded, err
		}
		seeded++
	}

	s.log.Info().Int("posts", seeded).Msg("example blog posts seeded")
	return seeded, nil
}

func examplePosts() []domain.BlogPost {
	now := time.Now().UTC()
	launchSummary := "A soft, modern take on digital banking."
	pricingSummary := "Transparent plans that scale with you."

	return []domain.BlogPost{
		{
			Title:       "Launching our pastel fintech platform",
			Slug:        "launching-pastel-fintech",
			Summary:     &launchSummary,
			Content:     "We are excited to introduce a gentle, human fintech experience...",
			Author:      "Team",
			Tags:        []string{"announcement", "fintech"},
			Published:   true,
			PublishedAt: &now,
		},
		{
			Title:       "How we price simply and fairly",
			Slug:        "simple-fair-pricing",
			Summary:     &pricingSummary,
			Content:     "No hidden fees. Just clear tiers designed for growth...",
			Author:      "Team",
			Tags:        []string{"pricing", "product"},
			Published:   true,
			PublishedAt: &now,
		},
	}
}
