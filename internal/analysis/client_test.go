package analysis

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"handle":"test"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"handle":         "test",
			"name":           "Test",
			"followers":      71336,
			"averageViews":   49935,
			"category":       "Fashion",
			"engagementRate": 6.3,
			"location":       "Los Angeles, CA",
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	metrics, err := client.Analyze(context.Background(), "test")
	require.NoError(t, err)
	require.Equal(t, "test", metrics.Handle)
	require.Equal(t, 71336, metrics.Followers)
	require.Equal(t, "Fashion", metrics.Category)
}

func TestClientAnalyzeErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid handle format"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Analyze(context.Background(), "bad handle!")

	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Invalid handle format", apiErr.Message)
}

func TestClientAnalyzeNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Analyze(context.Background(), "test")

	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "upstream exploded", apiErr.Message)
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	client, err := NewClient("localhost:9000/")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000", client.baseURL)
}

func TestNewClientEmptyBaseUsesDefault(t *testing.T) {
	client, err := NewClient("  ")
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, client.baseURL)
}
