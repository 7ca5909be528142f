package auth_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishikeshSreekumar/vibevault/internal/auth"
)

func TestAuthorize(t *testing.T) {
	guard := auth.NewGuard("topsecret")

	assert.NoError(t, guard.Authorize("topsecret"))
	assert.ErrorIs(t, guard.Authorize("wrong"), auth.ErrForbidden)
	assert.ErrorIs(t, guard.Authorize(""), auth.ErrForbidden)
	assert.ErrorIs(t, guard.Authorize("topsecret "), auth.ErrForbidden)
}

func TestAuthorizeUnconfigured(t *testing.T) {
	guard := auth.NewGuard("")

	// With no server secret, every request fails as misconfigured, even one
	// presenting the empty string.
	assert.ErrorIs(t, guard.Authorize("anything"), auth.ErrNotConfigured)
	assert.ErrorIs(t, guard.Authorize(""), auth.ErrNotConfigured)
}

func TestRequireMiddleware(t *testing.T) {
	app := fiber.New()
	app.Post("/protected", auth.NewGuard("topsecret").Require(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"valid key", "topsecret", fiber.StatusOK},
		{"wrong key", "nope", fiber.StatusForbidden},
		{"missing key", "", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/protected", nil)
			if tt.key != "" {
				req.Header.Set(auth.HeaderAPIKey, tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequireMiddlewareUnconfigured(t *testing.T) {
	app := fiber.New()
	app.Post("/protected", auth.NewGuard("").Require(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set(auth.HeaderAPIKey, "topsecret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
