// headlines-feeds serves a directory of JSON feeds for offline development.
// Point FEED_URL at http://localhost:3000/feeds/<file>.json.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bilgisen/headlines/internal/api"
	"github.com/bilgisen/headlines/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var dir, addr, level string

	flagSet := pflag.NewFlagSet("headlines-feeds", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "./web/feeds", "directory of JSON feeds to serve")
	flagSet.StringVar(&addr, "addr", ":3000", "listen address")
	flagSet.StringVar(&level, "log-level", logger.InfoLevel, "log level")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("feed directory %q is not readable", dir)
	}

	if err := logger.Init(logger.Config{
		Level:  level,
		Output: "stdout",
		Pretty: true,
	}); err != nil {
		return err
	}
	log := logger.Get()

	app := api.NewFeedServer(dir)

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("dir", dir).Msg("Serving feeds")
		errc <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case <-quit:
	}

	log.Info().Msg("Shutting down feed server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Feed server forced to shutdown")
	}
	return nil
}
