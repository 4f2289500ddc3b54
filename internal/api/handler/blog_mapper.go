package handler

import "github.com/pastelpay/landing-api/internal/core/domain"

func toBlogResponse(p domain.BlogPost) blogResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return blogResponse{
		Title:       p.Title,
		Slug:        p.Slug,
		Summary:     p.Summary,
		Content:     p.Content,
		Author:      p.Author,
		Tags:        tags,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
	}
}

func toBlogListResponse(posts []domain.BlogPost) []blogResponse {
	out := make([]blogResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toBlogResponse(p))
	}
	return out
}
