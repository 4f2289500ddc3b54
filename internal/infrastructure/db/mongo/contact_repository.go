package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

const contactCollection = "contactmessage"

// ContactRepository persists submissions in the "contactmessage" collection.
type ContactRepository struct {
	store *Store
}

func NewContactRepository(store *Store) *ContactRepository {
	return &ContactRepository{store: store}
}

type contactDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Email   string             `bson:"email"`
	Subject *string            `bson:"subject,omitempty"`
	Message string             `bson:"message"`
}

func (r *ContactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) (string, error) {
	doc := contactDoc{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}
	return r.store.Insert(ctx, contactCollection, doc)
}
