package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/result"
	"github.com/go-resty/resty/v2"
)

// Source fetches a feed document from a location
type Source interface {
	Fetch(ctx context.Context, url string) result.Result[*models.NewsResponse]
}

// HTTPFetcher performs a single GET per fetch. It never retries.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher. A zero timeout means no timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := resty.New().SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPFetcher{client: client}
}

// Fetch retrieves and decodes the feed at url
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) result.Result[*models.NewsResponse] {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return httpError(resp.StatusCode())
	}

	return decode(resp.Body())
}

func decode(body []byte) result.Result[*models.NewsResponse] {
	var news models.NewsResponse
	if err := json.Unmarshal(body, &news); err != nil {
		return networkError(fmt.Errorf("failed to parse feed response: %w", err))
	}
	return result.Success(&news)
}

func httpError(code int) result.Result[*models.NewsResponse] {
	return result.Failure[*models.NewsResponse](fmt.Sprintf("HTTP Error: %d", code))
}

func networkError(err error) result.Result[*models.NewsResponse] {
	return result.Failure[*models.NewsResponse](fmt.Sprintf("Network error: %v", err))
}
