package push

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/bilgisen/headlines/internal/logger"
)

// Notifier displays a notification
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Multi fans a notification out to every notifier and joins their errors
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier records notifications in the application log
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n Notification) error {
	logger.Info().
		Int("id", n.ID).
		Str("channel", n.Channel).
		Str("title", n.Title).
		Msg("Notification received")
	return nil
}

// DesktopNotifier shows notifications through the operating system's
// notification tool
type DesktopNotifier struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) error
}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{
		goos: runtime.GOOS,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (d *DesktopNotifier) Notify(ctx context.Context, n Notification) error {
	name, args := d.command(n)
	if name == "" {
		return fmt.Errorf("desktop notifications are not supported on %s", d.goos)
	}
	if err := d.run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to show desktop notification: %w", err)
	}
	return nil
}

func (d *DesktopNotifier) command(n Notification) (string, []string) {
	switch d.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(n.Body), strconv.Quote(n.Title))
		return "osascript", []string{"-e", script}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "notify-send", []string{
			"--app-name=headlines",
			"--urgency=critical",
			"--hint=string:x-canonical-private-synchronous:" + n.Channel,
			n.Title,
			n.Body,
		}
	default:
		return "", nil
	}
}
