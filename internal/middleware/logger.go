package middleware

import (
    "time"

    "github.com/bilgisen/headlines/internal/logger"
    "github.com/gofiber/fiber/v2"
    "github.com/rs/zerolog"
)

// LoggerConfig defines the config for the logger middleware
type LoggerConfig struct {
    // Next defines a function to skip middleware.
    // Optional. Default: nil
    Next func(c *fiber.Ctx) bool

    // Logger is the zerolog logger instance to use.
    // If not provided, the application logger will be used.
    Logger *zerolog.Logger
}

// NewLogger logs one line per request. Client errors log at warn and
// server errors at error level.
func NewLogger(config ...LoggerConfig) fiber.Handler {
    cfg := LoggerConfig{}
    if len(config) > 0 {
        cfg = config[0]
    }

    // Set default logger if not provided
    if cfg.Logger == nil {
        cfg.Logger = logger.Get()
    }

    return func(c *fiber.Ctx) error {
        // Skip middleware if Next returns true
        if cfg.Next != nil && cfg.Next(c) {
            return c.Next()
        }

        start := time.Now()
        err := c.Next()
        latency := time.Since(start)

        status := c.Response().StatusCode()
        if fe, ok := err.(*fiber.Error); ok {
            status = fe.Code
        }

        var event *zerolog.Event
        switch {
        case status >= fiber.StatusInternalServerError:
            event = cfg.Logger.Error()
        case status >= fiber.StatusBadRequest:
            event = cfg.Logger.Warn()
        case err != nil:
            event = cfg.Logger.Error()
        default:
            event = cfg.Logger.Info()
        }

        event.
            Str("method", c.Method()).
            Str("path", c.Path()).
            Int("status", status).
            Str("ip", c.IP()).
            Int("bytes", len(c.Response().Body())).
            Dur("latency", latency).
            Err(err).
            Msg("request")

        return err
    }
}

// RequestLogger returns the logger middleware with default settings
func RequestLogger() fiber.Handler {
    return NewLogger()
}
