package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedServerServesJSON(t *testing.T) {
	dir := t.TempDir()
	body := `{"status":"ok","articles":[{"title":"one","publishedAt":"2024-03-01T00:00:00Z"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "news.json"), []byte(body), 0o644))

	app := NewFeedServer(dir)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/feeds/news.json", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.JSONEq(t, body, string(data))
}

func TestFeedServerMissingFeed(t *testing.T) {
	app := NewFeedServer(t.TempDir())

	resp, payload := do(t, app, http.MethodGet, "/feeds/missing.json", "", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Feed not found", payload["error"])
}

func TestFeedServerHealth(t *testing.T) {
	resp, payload := do(t, NewFeedServer(t.TempDir()), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", payload["status"])
}
