package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testProfilePage = `<html><head><script type="application/ld+json">{"@type":"Person","name":"Jane Doe"}</script></head><body></body></html>`

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestFetcherSetsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path

		_, _ = w.Write([]byte(testProfilePage))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL, time.Second)

	body, err := fetcher.Fetch(context.Background(), "janedoe")
	require.NoError(t, err)
	require.NotEmpty(t, body)

	require.Contains(t, gotUA, "Mozilla/5.0")
	require.Contains(t, gotAccept, "text/html")
	require.Equal(t, "/janedoe/", gotPath)
}

func TestFetcherNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL, time.Second)

	_, err := fetcher.Fetch(context.Background(), "missing")
	require.ErrorIs(t, err, ErrHTTPStatusNotOK)
}

func TestEnricherDisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testProfilePage))
	}))
	defer server.Close()

	enricher := NewEnricher(NewFetcher(server.URL, time.Second), true, testLogger())

	name, ok := enricher.DisplayName(context.Background(), "janedoe")
	require.True(t, ok)
	require.Equal(t, "Jane Doe", name)
}

func TestEnricherAbsorbsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	enricher := NewEnricher(NewFetcher(server.URL, time.Second), true, testLogger())

	name, ok := enricher.DisplayName(context.Background(), "janedoe")
	require.False(t, ok)
	require.Empty(t, name)
}

func TestEnricherAbsorbsMissingName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><head></head><body></body></html>"))
	}))
	defer server.Close()

	enricher := NewEnricher(NewFetcher(server.URL, time.Second), true, testLogger())

	_, ok := enricher.DisplayName(context.Background(), "janedoe")
	require.False(t, ok)
}

func TestEnricherDisabled(t *testing.T) {
	requested := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requested = true

		_, _ = w.Write([]byte(testProfilePage))
	}))
	defer server.Close()

	enricher := NewEnricher(NewFetcher(server.URL, time.Second), false, testLogger())

	_, ok := enricher.DisplayName(context.Background(), "janedoe")
	require.False(t, ok)
	require.False(t, requested, "disabled enricher must not fetch")
}
