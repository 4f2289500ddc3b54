package domain

import "time"

// BlogPost is a published article on the marketing site. Posts are normally
// authored out-of-band; the service only reads them, apart from the one-time
// example-post seeding at startup.
type BlogPost struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     *string    `json:"summary,omitempty"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
