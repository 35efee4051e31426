package api

import (
	"errors"
	"time"

	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/middleware"
	"github.com/bilgisen/headlines/internal/push"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	dispatcher *push.Dispatcher
}

func NewHandlers(dispatcher *push.Dispatcher) *Handlers {
	return &Handlers{dispatcher: dispatcher}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// ReceiveMessage handles POST /api/v1/push/messages
func (h *Handlers) ReceiveMessage(c *fiber.Ctx) error {
	msg, ok := middleware.Validated[push.Message](c)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "missing validated body")
	}

	n, err := h.dispatcher.Deliver(c.UserContext(), *msg)
	if err != nil {
		logger.Get().Error().
			Err(err).
			Str("title", msg.Title).
			Msg("Error handling push message")
		return fiber.NewError(fiber.StatusBadGateway, "notification not delivered")
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status":       "delivered",
		"notification": n,
	})
}

// RegisterToken handles POST /api/v1/push/tokens
func (h *Handlers) RegisterToken(c *fiber.Ctx) error {
	reg, ok := middleware.Validated[push.TokenRegistration](c)
	if !ok {
		return errors.New("missing validated body")
	}

	if err := h.dispatcher.RegisterToken(c.UserContext(), *reg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
