// headlines is a terminal news reader. It loads a JSON article feed, lists
// it newest or oldest first, and opens articles in the default browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"

	"github.com/bilgisen/headlines/internal/api"
	"github.com/bilgisen/headlines/internal/config"
	"github.com/bilgisen/headlines/internal/feed"
	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/presenter"
	"github.com/bilgisen/headlines/internal/push"
	"github.com/bilgisen/headlines/internal/storage"
	"github.com/bilgisen/headlines/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flagSet := pflag.NewFlagSet("headlines", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.FeedURL, "feed-url", cfg.FeedURL, "feed to load (http, https or s3 URL)")
	flagSet.StringVar(&cfg.PrefsBackend, "prefs-backend", cfg.PrefsBackend, "preference store: file, redis or memory")
	flagSet.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write JSON log records to this file")
	flagSet.BoolVar(&cfg.PushEnabled, "push", cfg.PushEnabled, "listen for push messages on --push-addr")
	flagSet.StringVar(&cfg.PushAddr, "push-addr", cfg.PushAddr, "push webhook listen address")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// the terminal belongs to the TUI, so logs go to a file
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: cfg.LogFile,
	}); err != nil {
		return err
	}
	log := logger.Get()
	log.Info().Str("feed_url", cfg.FeedURL).Str("prefs_backend", cfg.PrefsBackend).Msg("Starting reader")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing preference store")
		}
	}()

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return err
	}
	news := presenter.NewNewsPresenter(repo, cfg.FeedURL)
	defer news.Close()

	banner := &ui.ProgramNotifier{}
	notifiers := push.Multi{push.LogNotifier{}, banner}
	if cfg.DesktopNotify {
		desktop := push.NewDesktopNotifier()
		// the in-app banner already shows the message; a missing desktop tool only warns
		notifiers = append(notifiers, push.NotifierFunc(func(ctx context.Context, n push.Notification) error {
			if err := desktop.Notify(ctx, n); err != nil {
				log.Warn().Err(err).Msg("Desktop notification failed")
			}
			return nil
		}))
	}

	if cfg.PushEnabled {
		app := api.NewApp(cfg, push.NewDispatcher(notifiers))
		go func() {
			log.Info().Str("addr", cfg.PushAddr).Msg("Starting push webhook")
			if err := app.Listen(cfg.PushAddr); err != nil {
				log.Error().Err(err).Msg("Push webhook stopped")
			}
		}()
		defer shutdownWebhook(app, cfg)
	}

	program := tea.NewProgram(ui.NewModel(ctx, news, store), tea.WithAltScreen(), tea.WithContext(ctx))
	banner.Attach(program)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	log.Info().Msg("Reader exited")
	return nil
}

// newRepository registers the S3 source only when the feed lives in a bucket
func newRepository(ctx context.Context, cfg *config.Config) (*feed.Repository, error) {
	repo := feed.NewRepository(feed.NewHTTPFetcher(cfg.FetchTimeout))

	u, err := url.Parse(cfg.FeedURL)
	if err != nil || u.Scheme != "s3" {
		return repo, nil
	}
	client, err := feed.NewS3Client(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create S3 client: %w", err)
	}
	return repo.WithSource("s3", feed.NewS3Fetcher(client)), nil
}

func shutdownWebhook(app *fiber.App, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("Push webhook forced to shutdown")
	}
}
