// Package presenter holds the latest fetched feed for the display layer.
package presenter

import (
	"context"
	"sync"

	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/result"
)

// Fetcher is the repository call the presenter delegates to
type Fetcher interface {
	FetchNewsArticles(ctx context.Context, url string) result.Result[*models.NewsResponse]
}

// NewsPresenter owns the observable feed slot. A nil value means no feed is
// available, either because nothing has loaded yet or the last fetch failed.
type NewsPresenter struct {
	repo Fetcher
	url  string

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	latest     *models.NewsResponse
	updates    chan *models.NewsResponse
	wg         sync.WaitGroup
}

func NewNewsPresenter(repo Fetcher, url string) *NewsPresenter {
	return &NewsPresenter{
		repo:    repo,
		url:     url,
		updates: make(chan *models.NewsResponse, 1),
	}
}

// Updates delivers every published value. The channel holds at most one
// pending value; an unread value is replaced by a newer one.
func (p *NewsPresenter) Updates() <-chan *models.NewsResponse {
	return p.updates
}

// Latest returns the most recently published value
func (p *NewsPresenter) Latest() *models.NewsResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// FetchArticles starts a background fetch and returns immediately. Any fetch
// still in flight is cancelled and its result discarded.
func (p *NewsPresenter) FetchArticles(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.generation++
	gen := p.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		res := p.repo.FetchNewsArticles(fetchCtx, p.url)

		var news *models.NewsResponse
		if res.OK() {
			news = res.Value()
		} else {
			logger.Error().
				Str("url", p.url).
				Str("error", res.Message()).
				Msg("Error fetching news articles")
		}

		p.publish(gen, news)
	}()
}

// Close cancels any in-flight fetch and waits for it to finish
func (p *NewsPresenter) Close() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	// results arriving after Close are dropped
	p.generation++
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *NewsPresenter) publish(gen uint64, news *models.NewsResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		logger.Debug().Uint64("generation", gen).Msg("Dropping superseded fetch result")
		return
	}
	p.latest = news

	// replace any value the consumer has not read yet
	select {
	case <-p.updates:
	default:
	}
	p.updates <- news
}
