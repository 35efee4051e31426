package middleware

import (
    "crypto/subtle"
    "errors"
    "strings"

    "github.com/bilgisen/headlines/internal/logger"
    "github.com/gofiber/fiber/v2"
)

// AuthConfig defines the config for the auth middleware
type AuthConfig struct {
	// Next defines a function to skip middleware.
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Key is the shared secret callers must present. An empty key disables
	// the check.
	Key string

	// Header is the header key where to get the API key from.
	// Optional. Default: "X-API-Key"
	Header string
}

// NewAuth requires callers to present cfg.Key in the configured header,
// optionally prefixed with "Bearer "
func NewAuth(cfg AuthConfig) fiber.Handler {
	if cfg.Header == "" {
		cfg.Header = "X-API-Key"
	}

	return func(c *fiber.Ctx) error {
		if cfg.Key == "" || (cfg.Next != nil && cfg.Next(c)) {
			return c.Next()
		}

		token := strings.TrimPrefix(c.Get(cfg.Header), "Bearer ")
		if token == "" {
			return unauthorized(c, errors.New("missing API key"))
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Key)) != 1 {
			return unauthorized(c, errors.New("invalid API key"))
		}

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, err error) error {
	logger.Get().Warn().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("ip", c.IP()).
		Err(err).
		Msg("Authentication failed")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid or missing API Key",
	})
}
