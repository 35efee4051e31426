package push

import (
	"context"
	"fmt"

	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/utils"
	"github.com/go-playground/validator/v10"
)

// Dispatcher validates inbound messages and hands them to the notifier
type Dispatcher struct {
	notifier Notifier
	validate *validator.Validate
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		validate: validator.New(),
	}
}

// Deliver renders msg as a local notification
func (d *Dispatcher) Deliver(ctx context.Context, msg Message) (Notification, error) {
	if err := d.validate.Struct(msg); err != nil {
		return Notification{}, err
	}

	n := NewNotification(msg)
	if err := d.notifier.Notify(ctx, n); err != nil {
		logger.Error().
			Err(err).
			Str("title", msg.Title).
			Msg("Error delivering notification")
		return n, fmt.Errorf("failed to deliver notification: %w", err)
	}
	return n, nil
}

// RegisterToken records a refreshed device token. Only its hash is logged.
func (d *Dispatcher) RegisterToken(ctx context.Context, reg TokenRegistration) error {
	if err := d.validate.Struct(reg); err != nil {
		return err
	}
	logger.Info().
		Str("token", utils.Fingerprint(reg.Token)).
		Msg("Device token refreshed")
	return nil
}
