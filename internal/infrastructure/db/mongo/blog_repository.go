package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

const blogCollection = "blogpost"

// BlogRepository persists posts in the "blogpost" collection.
type BlogRepository struct {
	store *Store
}

func NewBlogRepository(store *Store) *BlogRepository {
	return &BlogRepository{store: store}
}

// blogDoc mirrors the stored document. Pointer fields distinguish absent
// values so read defaults can be applied: posts written out-of-band may omit
// tags or published.
type blogDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Slug        string             `bson:"slug"`
	Summary     *string            `bson:"summary,omitempty"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	Tags        []string           `bson:"tags,omitempty"`
	Published   *bool              `bson:"published,omitempty"`
	PublishedAt *time.Time         `bson:"published_at,omitempty"`
}

// FindPublished returns all posts with published == true in store-native
// order, with read defaults applied (missing tags -> empty slice, missing
// published -> true).
func (r *BlogRepository) FindPublished(ctx context.Context) ([]domain.BlogPost, error) {
	var docs []blogDoc
	if err := r.store.Find(ctx, blogCollection, bson.M{"published": true}, 0, &docs); err != nil {
		return nil, err
	}

	posts := make([]domain.BlogPost, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toDomain())
	}
	return posts, nil
}

// Insert stores a new post and returns its identifier.
func (r *BlogRepository) Insert(ctx context.Context, post *domain.BlogPost) (string, error) {
	published := post.Published
	doc := blogDoc{
		Title:       post.Title,
		Slug:        post.Slug,
		Summary:     post.Summary,
		Content:     post.Content,
		Author:      post.Author,
		Tags:        post.Tags,
		Published:   &published,
		PublishedAt: post.PublishedAt,
	}
	return r.store.Insert(ctx, blogCollection, doc)
}

func (d blogDoc) toDomain() domain.BlogPost {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	published := true
	if d.Published != nil {
		published = *d.Published
	}

	return domain.BlogPost{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Slug:        d.Slug,
		Summary:     d.Summary,
		Content:     d.Content,
		Author:      d.Author,
		Tags:        tags,
		Published:   published,
		PublishedAt: d.PublishedAt,
	}
}
