package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// DefaultHeader is the request header checked when Config.Header is empty.
const DefaultHeader = "X-UI-Token"

// Config holds configuration for the token guard.
type Config struct {
	// Header is the request header carrying the token.
	Header string
	// Token is the expected value. An empty token rejects every request.
	Token string
}

// New returns a middleware rejecting requests without the expected token.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = DefaultHeader
	}
	expected := []byte(cfg.Token)

	return func(c *fiber.Ctx) error {
		got := []byte(c.Get(header))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid token",
			})
		}
		return c.Next()
	}
}
