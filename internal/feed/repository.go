package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/result"
	"github.com/rs/zerolog"
)

// Repository routes fetches to a Source by URL scheme
type Repository struct {
	sources map[string]Source
}

// NewRepository serves http and https URLs with web
func NewRepository(web Source) *Repository {
	return &Repository{
		sources: map[string]Source{
			"http":  web,
			"https": web,
		},
	}
}

// WithSource registers src for scheme and returns r
func (r *Repository) WithSource(scheme string, src Source) *Repository {
	r.sources[strings.ToLower(scheme)] = src
	return r
}

// FetchNewsArticles fetches the feed at feedURL. Every failure, including a
// panic inside a Source, comes back as a Failure result.
func (r *Repository) FetchNewsArticles(ctx context.Context, feedURL string) (res result.Result[*models.NewsResponse]) {
	log := logger.Get()
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res = networkError(fmt.Errorf("panic: %v", p))
		}
		var event *zerolog.Event
		if res.OK() && res.Value() != nil {
			event = log.Info().Int("articles", len(res.Value().Articles))
		} else {
			event = log.Warn().Str("error", res.Message())
		}
		event.
			Str("url", feedURL).
			Dur("duration", time.Since(start)).
			Msg("Fetched news feed")
	}()

	u, err := url.Parse(feedURL)
	if err != nil {
		return networkError(fmt.Errorf("invalid feed URL: %w", err))
	}

	src, ok := r.sources[strings.ToLower(u.Scheme)]
	if !ok || src == nil {
		return networkError(fmt.Errorf("unsupported feed URL scheme %q", u.Scheme))
	}

	return src.Fetch(ctx, feedURL)
}
