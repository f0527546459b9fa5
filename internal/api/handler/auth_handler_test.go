package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, username, password, confirmPassword string) (*domain.Account, error)
	authenticateFn func(ctx context.Context, username, password string) (*domain.Principal, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, confirmPassword string) (*domain.Account, error) {
	return s.registerFn(ctx, username, password, confirmPassword)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*domain.Principal, error) {
	return s.authenticateFn(ctx, username, password)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, confirmPassword string) (*domain.Account, error) {
			if username != "alice" || password != "pw1" || confirmPassword != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", username, password, confirmPassword)
			}
			return &domain.Account{ID: "acc-1", Username: username, Role: domain.RoleUser, Enabled: true}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"pw1","confirm_password":"pw1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != "USER" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("response must never contain the hash")
	}
}

func TestAuthHandler_Register_Failures(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, username, password, confirmPassword string) (*domain.Account, error) {
					return nil, tc.err
				},
			}
			handler := NewAuthHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"bob"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.Register(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*domain.Principal, error) {
			return &domain.Principal{Username: "alice", Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"pw1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

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
	principal, ok := resp["principal"].(map[string]any)
	if !ok {
		t.Fatalf("expected principal in response")
	}
	if principal["username"] != "alice" || principal["role"] != "USER" {
		t.Fatalf("unexpected principal payload: %+v", principal)
	}
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*domain.Principal, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	// Unknown username and wrong password produce the same body.
	for _, payload := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"ghost","password":"pw1"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["error"] != "invalid username or password" {
			t.Fatalf("rejection message must be generic, got %q", resp["error"])
		}
	}
}
