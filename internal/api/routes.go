package api

import (
	"github.com/bilgisen/headlines/internal/config"
	"github.com/bilgisen/headlines/internal/middleware"
	"github.com/bilgisen/headlines/internal/push"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the push webhook server
func NewApp(cfg *config.Config, dispatcher *push.Dispatcher) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "headlines",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	SetupRoutes(app, NewHandlers(dispatcher), cfg)
	return app
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers, cfg *config.Config) {
	// API group with versioning
	api := app.Group("/api/v1")

	// Health check endpoint
	api.Get("/health", handlers.HealthCheck)

	// Push endpoints
	pushGroup := api.Group("/push", middleware.NewAuth(middleware.AuthConfig{Key: cfg.PushAPIKey}))
	{
		pushGroup.Post("/messages", middleware.ValidateBody[push.Message](), handlers.ReceiveMessage)
		pushGroup.Post("/tokens", middleware.ValidateBody[push.TokenRegistration](), handlers.RegisterToken)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
