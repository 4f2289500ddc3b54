package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pastelpay/landing-api/internal/core/domain"
	"github.com/pastelpay/landing-api/internal/core/ports"
)

// ContactService stores contact-form submissions.
type ContactService struct {
	repo ports.ContactRepository
	log  zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

// Submit persists the message unconditionally and returns its identifier.
func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (string, error) {
	msg := &domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	id, err := s.repo.Insert(ctx, msg)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("message_id", id).Msg("contact message stored")
	return id, nil
}
