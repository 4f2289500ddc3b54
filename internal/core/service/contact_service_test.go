package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pastelpay/landing-api/internal/core/domain"
	"github.com/pastelpay/landing-api/internal/core/ports"
)

type stubContactRepo struct {
	inserted  []*domain.ContactMessage
	insertErr error
}

func (r *stubContactRepo) Insert(_ context.Context, msg *domain.ContactMessage) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	r.inserted = append(r.inserted, msg)
	return "msg-1", nil
}

func TestContactService_Submit_Stores(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, zerolog.Nop())

	subject := "pricing"
	id, err := svc.Submit(context.Background(), ports.ContactInput{
		Name:    "Ada",
		Email:   "ada@x.com",
		Subject: &subject,
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if id != "msg-1" {
		t.Fatalf("unexpected id: %s", id)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.inserted))
	}
	msg := repo.inserted[0]
	if msg.Name != "Ada" || msg.Email != "ada@x.com" || msg.Message != "hello" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.Subject == nil || *msg.Subject != "pricing" {
		t.Fatalf("subject not stored: %v", msg.Subject)
	}
}

func TestContactService_Submit_NoDedup(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, zerolog.Nop())

	in := ports.ContactInput{Name: "Ada", Email: "ada@x.com", Message: "hello"}
	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), in); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}
	if len(repo.inserted) != 3 {
		t.Fatalf("identical submissions must all be stored, got %d", len(repo.inserted))
	}
}

func TestContactService_Submit_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("document store not available")
	repo := &stubContactRepo{insertErr: storeErr}
	svc := NewContactService(repo, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), ports.ContactInput{Name: "A", Email: "a@x.com", Message: "m"}); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
