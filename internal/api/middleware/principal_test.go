package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

type stubAuthService struct{}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (*domain.Account, error) {
	panic("not used")
}

func (s *stubAuthService) Authenticate(_ context.Context, username, password string) (*domain.Principal, error) {
	if username == "alice" && password == "pw1" {
		return &domain.Principal{Username: "alice", Role: domain.RoleUser}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func TestPrincipalMiddleware_ValidCredentials(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("alice", "pw1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Principal(&stubAuthService{})
	handler := mw(func(c echo.Context) error {
		called = true
		p := PrincipalFrom(c)
		if p == nil || p.Username != "alice" || p.Role != domain.RoleUser {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestPrincipalMiddleware_NoHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Principal(&stubAuthService{})
	handler := mw(func(c echo.Context) error {
		called = true
		if PrincipalFrom(c) != nil {
			t.Fatalf("anonymous request must carry no principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestPrincipalMiddleware_BadCredentials(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("alice", "wrong")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Principal(&stubAuthService{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
