package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bilgisen/headlines/internal/middleware"
)

// NewFeedServer serves the JSON feeds in dir under /feeds
func NewFeedServer(dir string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "headlines-feeds",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Static("/feeds", dir, fiber.Static{
		Browse: true,
		ModifyResponse: func(c *fiber.Ctx) error {
			if strings.HasSuffix(c.Path(), ".json") {
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			}
			// the reader should always see the file as it is on disk
			c.Set(fiber.HeaderCacheControl, "no-store")
			return nil
		},
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feed not found"})
	})
	return app
}
