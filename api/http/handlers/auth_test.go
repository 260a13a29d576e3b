package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/artem13815/founderkit/pkg/auth"
	"github.com/artem13815/founderkit/pkg/health"
)

type fakeAuth struct {
	user auth.User
	err  error
}

func (f *fakeAuth) result() (auth.AuthResult, error) {
	if f.err != nil {
		return auth.AuthResult{}, f.err
	}
	return auth.AuthResult{User: f.user, Token: auth.Token{Value: "jwt", ExpiresAt: time.Now().Add(time.Hour)}}, nil
}

func (f *fakeAuth) Register(context.Context, string, string) (auth.AuthResult, error) {
	return f.result()
}

func (f *fakeAuth) Login(context.Context, string, string) (auth.AuthResult, error) {
	return f.result()
}

func (f *fakeAuth) Me(_ context.Context, id uuid.UUID) (auth.User, error) {
	if f.err != nil {
		return auth.User{}, f.err
	}
	if id != f.user.ID {
		return auth.User{}, auth.ErrNotFound
	}
	return f.user, nil
}

func newAuthApp(uc auth.AuthUseCase, user uuid.UUID) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(uc)
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/me", withUser(user), h.Me)
	return app
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler(t *testing.T) {
	user := auth.User{ID: uuid.New(), Email: "founder@example.com", CreatedAt: time.Now().UTC()}

	t.Run("register", func(t *testing.T) {
		code, body := do(t, newAuthApp(&fakeAuth{user: user}, uuid.Nil), postJSON("/register", `{"email":"founder@example.com","password":"correct horse"}`))
		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, user.ID.String(), body["id"])
		assert.Equal(t, "jwt", body["token"])
		assert.NotEmpty(t, body["expiresAt"])
		assert.NotContains(t, body, "PasswordHash")
	})

	t.Run("register errors", func(t *testing.T) {
		cases := map[error]int{
			auth.ErrUserAlreadyExists: http.StatusConflict,
			auth.ErrWeakPassword:      http.StatusBadRequest,
			errors.New("db down"):     http.StatusInternalServerError,
		}
		for err, status := range cases {
			code, _ := do(t, newAuthApp(&fakeAuth{err: err}, uuid.Nil), postJSON("/register", `{"email":"a@b.c","password":"x"}`))
			assert.Equal(t, status, code, err.Error())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		code, _ := do(t, newAuthApp(&fakeAuth{user: user}, uuid.Nil), postJSON("/login", `{"email":" "}`))
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("login rejected", func(t *testing.T) {
		code, body := do(t, newAuthApp(&fakeAuth{err: auth.ErrInvalidCredentials}, uuid.Nil), postJSON("/login", `{"email":"a@b.c","password":"x"}`))
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "invalid credentials", body["message"])
	})

	t.Run("me", func(t *testing.T) {
		code, body := do(t, newAuthApp(&fakeAuth{user: user}, user.ID), httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "founder@example.com", body["email"])
	})

	t.Run("me for a deleted account", func(t *testing.T) {
		code, _ := do(t, newAuthApp(&fakeAuth{user: user}, uuid.New()), httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("me anonymous", func(t *testing.T) {
		code, _ := do(t, newAuthApp(&fakeAuth{user: user}, uuid.Nil), httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

type stubReadiness struct{ report health.Report }

func (s stubReadiness) Ready(context.Context) health.Report { return s.report }

func TestHealthHandler(t *testing.T) {
	newApp := func(r health.Report) *fiber.App {
		app := fiber.New()
		h := NewHealthHandler(stubReadiness{report: r}, "gpt-4")
		app.Get("/health", h.Health)
		app.Get("/ready", h.Ready)
		return app
	}

	code, body := do(t, newApp(health.Report{}), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "gpt-4", body["model"])

	ok := health.Report{Ready: true, Checks: []health.CheckResult{{Name: "postgres", Status: health.StatusOK}}}
	code, body = do(t, newApp(ok), httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])

	bad := health.Report{Checks: []health.CheckResult{{Name: "postgres", Status: health.StatusFail, Error: "schema version 1, want 2"}}}
	code, body = do(t, newApp(bad), httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not_ready", body["status"])
	checks, _ := body["checks"].([]any)
	if assert.Len(t, checks, 1) {
		assert.Equal(t, "schema version 1, want 2", checks[0].(map[string]any)["error"])
	}
}
