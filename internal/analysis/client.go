package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lueurxax/instagram-analyzer/internal/core/account"
)

const (
	defaultBaseURL       = "http://localhost:8080"
	defaultClientTimeout = 15 * time.Second
	analyzePath          = "/api/analyze"
)

// Client provides typed access to the resolution endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// NewClient constructs a Client pointing at the provided API base URL.
func NewClient(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}

	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}

	for _, opt := range opts {
		opt(cli)
	}

	return cli, nil
}

// APIError represents an error response from the endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed with status %d", e.Status)
	}

	return fmt.Sprintf("api request failed (%d): %s", e.Status, e.Message)
}

// Analyze requests metrics for a single handle. Non-2xx responses surface as
// APIError with the server-provided message when the body carries one.
func (c *Client) Analyze(ctx context.Context, handle string) (account.Metrics, error) {
	payload, err := json.Marshal(map[string]string{"handle": handle})
	if err != nil {
		return account.Metrics{}, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(payload))
	if err != nil {
		return account.Metrics{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return account.Metrics{}, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return account.Metrics{}, APIError{Status: resp.StatusCode, Message: extractError(resp.Body)}
	}

	var metrics account.Metrics
	if err := json.NewDecoder(resp.Body).Decode(&metrics); err != nil {
		return account.Metrics{}, fmt.Errorf("decode response: %w", err)
	}

	return metrics, nil
}

func extractError(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}

	return strings.TrimSpace(payload.Error)
}
