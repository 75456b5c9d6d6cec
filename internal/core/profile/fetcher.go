// Package profile performs the best-effort profile page fetch and display
// name extraction used to enrich derived account metrics. Every failure in
// this package is absorbed by the Enricher; callers never see an error.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrHTTPStatusNotOK indicates an HTTP response with a non-200 status code.
var ErrHTTPStatusNotOK = errors.New("HTTP status not OK")

const (
	defaultFetchTimeout = 5 * time.Second
	defaultBaseURL      = "https://www.instagram.com"
	maxBodySizeBytes    = 2 * 1024 * 1024

	browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Fetcher retrieves public profile pages. One attempt per handle, no retries.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch downloads the profile page for a handle. The body is capped at 2MB.
func (f *Fetcher) Fetch(ctx context.Context, handle string) ([]byte, error) {
	pageURL := fmt.Sprintf("%s/%s/", f.baseURL, handle)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrHTTPStatusNotOK, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}
