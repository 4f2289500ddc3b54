package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pastelpay/landing-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			if name != "Ada" || email != "ada@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return "65f1a2b3c4d5e6f7a8b9c0d1", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"name":"Ada","email":"ada@x.com","password":"secret"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok true, got %v", resp["ok"])
	}
	if resp["user_id"] != "65f1a2b3c4d5e6f7a8b9c0d1" {
		t.Fatalf("unexpected user_id: %v", resp["user_id"])
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/api/auth/register", `{"name":"Ada","email":"ada@x.com","password":"secret"}`)
	err := handler.Register(c)

	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/api/auth/register", `{"email":"ada@x.com"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	msg, _ := he.Message.(string)
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "password is required") {
		t.Fatalf("expected field-level messages, got %q", msg)
	}
}

func TestAuthHandler_Register_MalformedEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/api/auth/register", `{"name":"Ada","email":"not-an-email","password":"secret"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/api/auth/register", "not-json")
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "ada@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{Name: "Ada", Email: "ada@x.com", IsActive: true}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", `{"email":"ada@x.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true || resp["name"] != "Ada" || resp["email"] != "ada@x.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Login_BadCredentialsIndistinguishable(t *testing.T) {
	e := newTestEcho()

	// Unknown email and wrong password must surface as the exact same error.
	for _, name := range []string{"unknown email", "wrong password"} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, domain.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(stub)

		c, _ := postJSON(e, "/api/auth/login", `{"email":"ada@x.com","password":"bad"}`)
		err := handler.Login(c)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := postJSON(e, "/api/auth/login", `{"email":"ada@x.com"}`)
	err := handler.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
