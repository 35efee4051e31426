package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `{
  "status": "ok",
  "articles": [
    {"source": {"id": "bbc", "name": "BBC"}, "author": "A", "title": "One", "description": "d1",
     "url": "https://example.com/1", "urlToImage": "", "publishedAt": "2024-01-02T03:04:05Z", "content": "c1"},
    {"source": {"id": "cnn", "name": "CNN"}, "author": "B", "title": "Two", "description": "d2",
     "url": "https://example.com/2", "urlToImage": "", "publishedAt": "", "content": "c2"}
  ]
}`

func newFeedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcherSuccess(t *testing.T) {
	srv := newFeedServer(t, http.StatusOK, feedBody)

	res := NewHTTPFetcher(0).Fetch(context.Background(), srv.URL)

	require.True(t, res.OK(), res.Message())
	news := res.Value()
	assert.Equal(t, "ok", news.Status)
	require.Len(t, news.Articles, 2)
	assert.Equal(t, "One", news.Articles[0].Title)
	assert.Equal(t, "BBC", news.Articles[0].Source.Name)
	assert.Equal(t, "https://example.com/2", news.Articles[1].URL)
}

func TestHTTPFetcherStatusError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		srv := newFeedServer(t, status, feedBody)

		res := NewHTTPFetcher(0).Fetch(context.Background(), srv.URL)

		assert.False(t, res.OK())
		assert.Nil(t, res.Value())
		assert.Contains(t, res.Message(), "HTTP Error: "+strconv.Itoa(status))
	}
}

func TestHTTPFetcher404Message(t *testing.T) {
	srv := newFeedServer(t, http.StatusNotFound, "missing")

	res := NewHTTPFetcher(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, "HTTP Error: 404", res.Message())
}

func TestHTTPFetcherMalformedBody(t *testing.T) {
	srv := newFeedServer(t, http.StatusOK, `{"articles": [`)

	res := NewHTTPFetcher(0).Fetch(context.Background(), srv.URL)

	assert.False(t, res.OK())
	assert.Contains(t, res.Message(), "Network error:")
}

func TestHTTPFetcherTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := NewHTTPFetcher(0).Fetch(context.Background(), url)

	assert.False(t, res.OK())
	assert.Contains(t, res.Message(), "Network error:")
}

func TestHTTPFetcherCancelledContext(t *testing.T) {
	srv := newFeedServer(t, http.StatusOK, feedBody)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewHTTPFetcher(0).Fetch(ctx, srv.URL)

	assert.False(t, res.OK())
	assert.Contains(t, res.Message(), "context canceled")
}
