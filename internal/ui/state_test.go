package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/sorting"
)

func feedOf(timestamps ...string) *models.NewsResponse {
	news := &models.NewsResponse{Status: "ok"}
	for _, ts := range timestamps {
		news.Articles = append(news.Articles, models.Article{
			Title:       ts,
			PublishedAt: ts,
			URL:         "https://example.com/" + ts,
		})
	}
	return news
}

func shown(s State) []string {
	out := make([]string, 0, len(s.Articles))
	for _, a := range s.Articles {
		out = append(out, a.Title)
	}
	return out
}

func TestStateLifecycle(t *testing.T) {
	s := NewState(sorting.NewestFirst)
	assert.Equal(t, Loading, s.Phase)

	// toggling before anything loaded does nothing
	assert.Equal(t, s, s.Toggled())

	// a nil feed keeps the spinner
	assert.Equal(t, s, s.WithFeed(nil))

	s = s.WithFeed(feedOf("2024-03-01T00:00:00Z", "2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z"))
	assert.Equal(t, Loaded, s.Phase)
	assert.Equal(t, []string{"2024-03-01T00:00:00Z", "2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z"}, shown(s))

	s = s.Moved(2, 10).Toggled()
	assert.Equal(t, sorting.OldestFirst, s.Direction)
	assert.Equal(t, []string{"2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z", "2024-03-01T00:00:00Z"}, shown(s))
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 0, s.Offset)
}

func TestStateWithFeedUsesCurrentDirection(t *testing.T) {
	s := NewState(sorting.OldestFirst).WithFeed(feedOf("2024-03-01T00:00:00Z", "", "2024-01-01T00:00:00Z"))

	assert.Equal(t, []string{"", "2024-01-01T00:00:00Z", "2024-03-01T00:00:00Z"}, shown(s))
}

func TestStateMovedClampsAndScrolls(t *testing.T) {
	s := NewState(sorting.NewestFirst).WithFeed(feedOf(
		"2024-01-05T00:00:00Z", "2024-01-04T00:00:00Z", "2024-01-03T00:00:00Z",
		"2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z",
	))

	s = s.Moved(-1, 2)
	assert.Equal(t, 0, s.Cursor)

	s = s.Moved(3, 2)
	assert.Equal(t, 3, s.Cursor)
	assert.Equal(t, 2, s.Offset)

	s = s.Moved(10, 2)
	assert.Equal(t, 4, s.Cursor)
	assert.Equal(t, 3, s.Offset)

	s = s.Moved(-4, 2)
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 0, s.Offset)

	a, ok := s.Moved(1, 2).Selected()
	assert.True(t, ok)
	assert.Equal(t, "2024-01-04T00:00:00Z", a.Title)
}

func TestStateSelectedWhileLoading(t *testing.T) {
	_, ok := NewState(sorting.NewestFirst).Selected()
	assert.False(t, ok)
}
