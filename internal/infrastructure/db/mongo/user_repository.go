package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

const userCollection = "user"

// UserRepository persists accounts in the "user" collection.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	AvatarURL    *string            `bson:"avatar_url"`
	IsActive     bool               `bson:"is_active"`
}

// Create inserts the user. A unique-index violation on email maps to
// domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	doc := userDoc{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		AvatarURL:    user.AvatarURL,
		IsActive:     user.IsActive,
	}

	id, err := r.store.Insert(ctx, userCollection, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

// FindByEmail returns the first account matching the email, or
// domain.ErrUserNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var docs []userDoc
	if err := r.store.Find(ctx, userCollection, bson.M{"email": email}, 1, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrUserNotFound
	}

	d := docs[0]
	return &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AvatarURL:    d.AvatarURL,
		IsActive:     d.IsActive,
	}, nil
}

// EnsureIndexes creates the unique email index that closes the
// check-then-insert registration race.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	if !r.store.Available() {
		return ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.store.db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
