package handler

import "time"

// errorResponse documents the error envelope rendered by the central HTTP
// error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// blogResponse is the public shape of a post. Internal fields (identifier,
// storage metadata) are dropped.
type blogResponse struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     *string    `json:"summary"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}
