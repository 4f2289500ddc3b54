package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

type stubBlogService struct {
	listFn func(ctx context.Context) ([]domain.BlogPost, error)
	seedFn func(ctx context.Context) (int, error)
}

func (s *stubBlogService) List(ctx context.Context) ([]domain.BlogPost, error) {
	return s.listFn(ctx)
}

func (s *stubBlogService) SeedExamplePosts(ctx context.Context) (int, error) {
	return s.seedFn(ctx)
}

func getBlogs(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBlogHandler_List_MapsPosts(t *testing.T) {
	e := echo.New()
	summary := "Transparent plans that scale with you."
	published := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubBlogService{
		listFn: func(ctx context.Context) ([]domain.BlogPost, error) {
			return []domain.BlogPost{
				{
					ID:          "65f1a2b3c4d5e6f7a8b9c0d1",
					Title:       "How we price simply and fairly",
					Slug:        "simple-fair-pricing",
					Summary:     &summary,
					Content:     "No hidden fees.",
					Author:      "Team",
					Tags:        []string{"pricing", "product"},
					Published:   true,
					PublishedAt: &published,
				},
			}, nil
		},
	}
	handler := NewBlogHandler(stub)

	c, rec := getBlogs(e)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 post, got %d", len(resp))
	}
	post := resp[0]
	if post["slug"] != "simple-fair-pricing" || post["author"] != "Team" {
		t.Fatalf("unexpected post: %v", post)
	}
	if post["published"] != true {
		t.Fatalf("expected published true, got %v", post["published"])
	}
	if _, hasID := post["id"]; hasID {
		t.Fatalf("internal id leaked into response: %v", post)
	}
}

func TestBlogHandler_List_NilTagsBecomeEmptyArray(t *testing.T) {
	e := echo.New()
	stub := &stubBlogService{
		listFn: func(ctx context.Context) ([]domain.BlogPost, error) {
			return []domain.BlogPost{{Title: "t", Slug: "s", Content: "c", Author: "a", Published: true}}, nil
		},
	}
	handler := NewBlogHandler(stub)

	c, rec := getBlogs(e)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"tags":[]`) {
		t.Fatalf("expected empty tags array, got %s", rec.Body.String())
	}
}

func TestBlogHandler_List_EmptyResultIsArray(t *testing.T) {
	e := echo.New()
	stub := &stubBlogService{
		listFn: func(ctx context.Context) ([]domain.BlogPost, error) {
			return nil, nil
		},
	}
	handler := NewBlogHandler(stub)

	c, rec := getBlogs(e)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected [], got %q", rec.Body.String())
	}
}

func TestBlogHandler_List_ServiceErrorPropagates(t *testing.T) {
	e := echo.New()
	storeErr := errors.New("document store not available")
	stub := &stubBlogService{
		listFn: func(ctx context.Context) ([]domain.BlogPost, error) {
			return nil, storeErr
		},
	}
	handler := NewBlogHandler(stub)

	c, _ := getBlogs(e)
	if err := handler.List(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
