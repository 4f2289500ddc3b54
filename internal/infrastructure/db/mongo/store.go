package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable is returned by every Store operation when no database
// connection was established. The API degrades instead of crashing when
// MONGO_URI is absent or the database is unreachable at startup.
var ErrStoreUnavailable = errors.New("document store not available")

// Store is the uniform document-store adapter: insert one document into a
// named collection, or find documents matching a filter up to a limit.
// Typed repositories are built on top of it.
type Store struct {
	db *mongo.Database
}

// NewStore wraps the given database. A nil database yields a degraded store
// whose operations all fail with ErrStoreUnavailable.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether the store holds a live database handle.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Insert serializes doc into the collection and returns the generated
// identifier as a hex string.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if !s.Available() {
		return "", ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Find decodes all documents matching filter into out, up to limit when
// limit > 0. Results come back in store-native order; an empty result is
// not an error.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	if !s.Available() {
		return ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// Collections lists up to max collection names. Used by the diagnostics
// endpoint only.
func (s *Store) Collections(ctx context.Context, max int) ([]string, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// Ping verifies connectivity to the underlying server.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrStoreUnavailable
	}
	return s.db.Client().Ping(ctx, nil)
}

// Name returns the database name, or an empty string when degraded.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}
