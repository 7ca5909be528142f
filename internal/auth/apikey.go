// Package auth implements the static admin key check that gates every
// mutating endpoint.
package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// HeaderAPIKey is the request header carrying the admin secret.
const HeaderAPIKey = "X-API-KEY"

var (
	// ErrNotConfigured means no admin key is set server-side, so no request
	// can ever be authorized. Surfaced as a 500, distinct from a bad key.
	ErrNotConfigured = errors.New("administrator API key not configured on the server")

	// ErrForbidden means the presented key is missing or wrong.
	ErrForbidden = errors.New("could not validate credentials: invalid or missing API key")
)

// Guard holds the configured admin secret. The secret is passed in at
// construction; request handling never reads it from the environment.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: secret}
}

// Authorize succeeds iff a secret is configured and presented matches it
// exactly.
func (g *Guard) Authorize(presented string) error {
	if g.secret == "" {
		return ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(g.secret)) != 1 {
		return ErrForbidden
	}
	return nil
}

// Require returns middleware that rejects requests failing Authorize.
func (g *Guard) Require() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := g.Authorize(c.Get(HeaderAPIKey)); err != nil {
			if errors.Is(err, ErrNotConfigured) {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Next()
	}
}
