package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/founderkit/pkg/auth"
)

func newApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/", mw, func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalUserID).(string)
		return c.SendString("user=" + id)
	})
	return app
}

func get(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestMiddleware(t *testing.T) {
	user := auth.User{ID: uuid.New(), Email: "a@b.c"}
	issued, err := NewGenerator("secret", "founderkit", time.Hour).Generate(context.Background(), user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, time.Minute)
	token := issued.Value
	foreign, err := NewGenerator("secret", "someone-else", time.Hour).Generate(context.Background(), user)
	require.NoError(t, err)
	expired, err := NewGenerator("secret", "founderkit", -time.Minute).Generate(context.Background(), user)
	require.NoError(t, err)

	required := newApp(NewAuthMiddleware("secret", "founderkit"))
	optional := newApp(NewOptionalAuthMiddleware("secret", "founderkit"))

	code, body := get(t, required, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user="+user.ID.String(), body)

	code, _ = get(t, required, token)
	assert.Equal(t, http.StatusOK, code, "bare token is accepted")

	code, _ = get(t, required, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = get(t, required, "Bearer "+foreign.Value)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = get(t, required, "Bearer "+expired.Value)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = get(t, optional, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user=", body)

	code, body = get(t, optional, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user="+user.ID.String(), body)

	code, _ = get(t, optional, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, code)
}
