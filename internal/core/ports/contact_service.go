package ports

import "context"

// ContactInput carries a validated contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

// ContactService persists contact-form submissions. Every submission is
// stored unconditionally: no dedup, no rate limiting.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (string, error)
}
