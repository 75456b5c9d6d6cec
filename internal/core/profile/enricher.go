package profile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/instagram-analyzer/internal/platform/observability"
)

const (
	resultHit      = "hit"
	resultMiss     = "miss"
	resultError    = "error"
	resultDisabled = "disabled"
)

// Enricher wraps the fetch+extract path behind a silent best-effort API.
type Enricher struct {
	fetcher *Fetcher
	enabled bool
	logger  *zerolog.Logger
}

func NewEnricher(fetcher *Fetcher, enabled bool, logger *zerolog.Logger) *Enricher {
	return &Enricher{
		fetcher: fetcher,
		enabled: enabled,
		logger:  logger,
	}
}

// DisplayName attempts to resolve a live display name for the handle. Any
// failure (network, status, parse, missing field) returns ("", false); the
// caller keeps its derived name.
func (e *Enricher) DisplayName(ctx context.Context, handle string) (string, bool) {
	if !e.enabled {
		observability.EnrichmentRequests.WithLabelValues(resultDisabled).Inc()
		return "", false
	}

	start := time.Now()
	defer func() {
		observability.EnrichmentDuration.Observe(time.Since(start).Seconds())
	}()

	page, err := e.fetcher.Fetch(ctx, handle)
	if err != nil {
		observability.EnrichmentRequests.WithLabelValues(resultError).Inc()
		e.logger.Debug().Err(err).Str("handle", handle).Msg("profile fetch failed")

		return "", false
	}

	name, ok := ExtractDisplayName(page, handle)
	if !ok {
		observability.EnrichmentRequests.WithLabelValues(resultMiss).Inc()
		e.logger.Debug().Str("handle", handle).Msg("profile page has no display name")

		return "", false
	}

	observability.EnrichmentRequests.WithLabelValues(resultHit).Inc()

	return name, true
}
