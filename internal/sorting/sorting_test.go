package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/headlines/internal/models"
)

func article(title, publishedAt string) models.Article {
	return models.Article{Title: title, PublishedAt: publishedAt, URL: "https://example.com/" + title}
}

func titles(articles []models.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title)
	}
	return out
}

func TestSortEndToEnd(t *testing.T) {
	feed := []models.Article{
		article("march", "2024-03-01T00:00:00Z"),
		article("january", "2024-01-01T00:00:00Z"),
		article("february", "2024-02-01T00:00:00Z"),
	}

	newest := Sort(feed, NewestFirst)
	assert.Equal(t, []string{"march", "february", "january"}, titles(newest))

	oldest := Sort(newest, NewestFirst.Flip())
	assert.Equal(t, []string{"january", "february", "march"}, titles(oldest))
}

func TestSortSentinelPlacement(t *testing.T) {
	feed := []models.Article{
		article("b", ""),
		article("a", "2023-01-01T00:00:00Z"),
		article("c", "garbage"),
	}

	assert.Equal(t, []string{"a", "b", "c"}, titles(Sort(feed, NewestFirst)))
	assert.Equal(t, []string{"b", "c", "a"}, titles(Sort(feed, OldestFirst)))
}

func TestSortIdempotent(t *testing.T) {
	feed := []models.Article{
		article("x", "2024-05-01T08:00:00Z"),
		article("y", ""),
		article("z", "2024-05-01T08:00:00Z"),
		article("w", "2021-01-01T00:00:00Z"),
	}

	for _, d := range []Direction{NewestFirst, OldestFirst} {
		once := Sort(feed, d)
		assert.Equal(t, once, Sort(once, d))
	}
}

func TestSortStableForEqualKeys(t *testing.T) {
	feed := []models.Article{
		article("first", "2024-05-01T08:00:00Z"),
		article("second", "2024-05-01T08:00:00Z"),
		article("third", "2024-05-01T08:00:00Z"),
	}

	assert.Equal(t, []string{"first", "second", "third"}, titles(Sort(feed, NewestFirst)))
	assert.Equal(t, []string{"first", "second", "third"}, titles(Sort(feed, OldestFirst)))
}

func TestSortDirectionsAreReversedForDistinctKeys(t *testing.T) {
	feed := []models.Article{
		article("a", "2022-06-01T00:00:00Z"),
		article("b", "2020-06-01T00:00:00Z"),
		article("c", "2024-06-01T00:00:00Z"),
		article("d", "2023-06-01T00:00:00Z"),
	}

	desc := titles(Sort(feed, NewestFirst))
	asc := titles(Sort(feed, OldestFirst))
	require.Len(t, asc, len(desc))
	for i := range desc {
		assert.Equal(t, desc[i], asc[len(asc)-1-i])
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	feed := []models.Article{
		article("old", "2020-01-01T00:00:00Z"),
		article("new", "2024-01-01T00:00:00Z"),
	}

	_ = Sort(feed, NewestFirst)
	assert.Equal(t, []string{"old", "new"}, titles(feed))
	assert.Empty(t, Sort(nil, NewestFirst))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, OldestFirst, NewestFirst.Flip())
	assert.Equal(t, NewestFirst, NewestFirst.Flip().Flip())
	assert.Equal(t, "0", NewestFirst.String())
	assert.Equal(t, "1", OldestFirst.String())
	assert.Equal(t, "Newest first", NewestFirst.Label())
	assert.Equal(t, "Oldest first", OldestFirst.Label())

	d, err := ParseDirection("1")
	require.NoError(t, err)
	assert.Equal(t, OldestFirst, d)

	_, err = ParseDirection("2")
	assert.Error(t, err)
	_, err = ParseDirection("")
	assert.Error(t, err)
}
