package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "todo-api.com/todo-api/internal/errors"
	"todo-api.com/todo-api/internal/logger"
	model "todo-api.com/todo-api/internal/models"
	"todo-api.com/todo-api/internal/services"
)

type fakeAuthenticator struct {
	user  *model.User
	err   error
	token string
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (*model.User, *services.Claims, error) {
	f.token = token
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, &services.Claims{UserID: f.user.ID}, nil
}

func runAuthenticate(auth Authenticator, header string) (echo.Context, *httptest.ResponseRecorder, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := Authenticate(auth)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return c, rec, called, err
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	auth := &fakeAuthenticator{user: &model.User{ID: 1}}

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc", "Token abc"} {
		_, rec, called, err := runAuthenticate(auth, header)
		if called {
			t.Errorf("%q: handler must not run", header)
		}
		if !errors.Is(err, apperrors.ErrNotAuthenticated) {
			t.Errorf("%q: expected ErrNotAuthenticated, got %v", header, err)
		}
		if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
			t.Errorf("%q: expected WWW-Authenticate challenge", header)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(logger.NewWithWriter(&buf, "info", "json"))
	defer slog.SetDefault(previous)

	auth := &fakeAuthenticator{err: apperrors.ErrInvalidToken}

	_, rec, called, err := runAuthenticate(auth, "Bearer expired")
	if called {
		t.Error("handler must not run")
	}
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != `Bearer error="invalid_token"` {
		t.Errorf("unexpected challenge %q", got)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a json log line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "WARN" || entry["msg"] != "bearer token rejected" {
		t.Errorf("unexpected log entry %v", entry)
	}
}

func TestAuthenticate_StoreFailurePassesThrough(t *testing.T) {
	storeErr := errors.New("redis down")
	auth := &fakeAuthenticator{err: storeErr}

	_, _, called, err := runAuthenticate(auth, "Bearer abc")
	if called {
		t.Error("handler must not run")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestAuthenticate_SetsCurrentUser(t *testing.T) {
	auth := &fakeAuthenticator{user: &model.User{ID: 7, Username: "alice"}}

	c, _, called, err := runAuthenticate(auth, "bearer the-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected handler to run")
	}
	if auth.token != "the-token" {
		t.Errorf("expected token to be passed through, got %q", auth.token)
	}
	if user := CurrentUser(c); user == nil || user.ID != 7 {
		t.Errorf("expected current user 7, got %+v", user)
	}
	if claims := CurrentClaims(c); claims == nil || claims.UserID != 7 {
		t.Errorf("expected claims for user 7, got %+v", claims)
	}
}
