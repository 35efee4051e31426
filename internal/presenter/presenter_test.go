package presenter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/result"
)

type call struct {
	ctx     context.Context
	release chan result.Result[*models.NewsResponse]
}

// scriptedRepo blocks each fetch until the test releases it
type scriptedRepo struct {
	calls chan call
}

func newScriptedRepo() *scriptedRepo {
	return &scriptedRepo{calls: make(chan call, 8)}
}

func (s *scriptedRepo) FetchNewsArticles(ctx context.Context, url string) result.Result[*models.NewsResponse] {
	c := call{ctx: ctx, release: make(chan result.Result[*models.NewsResponse], 1)}
	s.calls <- c
	return <-c.release
}

func (s *scriptedRepo) next(t *testing.T) call {
	t.Helper()
	select {
	case c := <-s.calls:
		return c
	case <-time.After(time.Second):
		t.Fatal("fetch was not started")
		return call{}
	}
}

func receive(t *testing.T, p *NewsPresenter) *models.NewsResponse {
	t.Helper()
	select {
	case news := <-p.Updates():
		return news
	case <-time.After(time.Second):
		t.Fatal("no update published")
		return nil
	}
}

func TestFetchArticlesPublishesSuccess(t *testing.T) {
	repo := newScriptedRepo()
	p := NewNewsPresenter(repo, "https://example.com/feed.json")
	defer p.Close()

	p.FetchArticles(context.Background())
	want := &models.NewsResponse{Status: "ok", Articles: []models.Article{{Title: "one"}}}
	repo.next(t).release <- result.Success(want)

	assert.Same(t, want, receive(t, p))
	assert.Same(t, want, p.Latest())
}

func TestFetchArticlesPublishesNilOnFailure(t *testing.T) {
	repo := newScriptedRepo()
	p := NewNewsPresenter(repo, "https://example.com/feed.json")
	defer p.Close()

	p.FetchArticles(context.Background())
	repo.next(t).release <- result.Failure[*models.NewsResponse]("HTTP Error: 500")

	assert.Nil(t, receive(t, p))
	assert.Nil(t, p.Latest())
}

func TestFetchArticlesSupersedesInFlight(t *testing.T) {
	repo := newScriptedRepo()
	p := NewNewsPresenter(repo, "https://example.com/feed.json")
	defer p.Close()

	p.FetchArticles(context.Background())
	first := repo.next(t)
	p.FetchArticles(context.Background())
	second := repo.next(t)

	// the first fetch is cancelled once superseded
	select {
	case <-first.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}

	newer := &models.NewsResponse{Status: "second"}
	second.release <- result.Success(newer)
	assert.Same(t, newer, receive(t, p))

	// a late result from the older fetch is dropped
	first.release <- result.Success(&models.NewsResponse{Status: "first"})
	p.Close()

	select {
	case news := <-p.Updates():
		t.Fatalf("unexpected update %+v", news)
	default:
	}
	assert.Same(t, newer, p.Latest())
}

func TestUpdatesKeepsOnlyLatestValue(t *testing.T) {
	repo := newScriptedRepo()
	p := NewNewsPresenter(repo, "u")
	defer p.Close()

	p.FetchArticles(context.Background())
	repo.next(t).release <- result.Failure[*models.NewsResponse]("boom")
	require.Eventually(t, func() bool { return len(p.updates) == 1 }, time.Second, time.Millisecond)

	p.FetchArticles(context.Background())
	latest := &models.NewsResponse{Status: "ok"}
	repo.next(t).release <- result.Success(latest)
	require.Eventually(t, func() bool { return p.Latest() == latest }, time.Second, time.Millisecond)

	assert.Same(t, latest, receive(t, p))
	assert.Len(t, p.updates, 0)
}
