package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lueurxax/instagram-analyzer/internal/core/account"
	"github.com/lueurxax/instagram-analyzer/internal/platform/observability"
)

const (
	maxBodyBytes = 1 << 20

	routeAnalyze = "analyze"

	// Error message constants. These are part of the API contract.
	errMsgInvalidHandle = "Invalid handle provided"
	errMsgEmptyHandle   = "Handle cannot be empty"
	errMsgInvalidFormat = "Invalid handle format"
	errMsgInternal      = "Internal server error"
	errMsgMethod        = "Method not allowed"

	// Content type constants.
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json; charset=utf-8"

	requestIDHeader = "X-Request-ID"
)

// Enricher resolves a live display name for a handle, best-effort. A false
// return means the derived name stays in place.
type Enricher interface {
	DisplayName(ctx context.Context, handle string) (string, bool)
}

// Handler serves the metrics resolution endpoint.
type Handler struct {
	enricher Enricher
	logger   *zerolog.Logger
}

// NewHandler creates the analyze endpoint handler.
func NewHandler(enricher Enricher, logger *zerolog.Logger) *Handler {
	return &Handler{
		enricher: enricher,
		logger:   logger,
	}
}

type analyzeRequest struct {
	// Pointer distinguishes an absent handle field from an empty one.
	Handle *string `json:"handle"`
}

// ServeHTTP handles POST /api/analyze.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestID := uuid.New().String()
	w.Header().Set(requestIDHeader, requestID)

	logger := h.logger.With().Str("request_id", requestID).Logger()

	status := h.handleAnalyze(w, r, &logger)

	observability.AnalyzeRequestLatency.WithLabelValues(routeAnalyze).Observe(time.Since(start).Seconds())
	observability.AnalyzeRequestsTotal.WithLabelValues(routeAnalyze, strconv.Itoa(status)).Inc()
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) (status int) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("analyze handler panicked")

			status = h.writeError(w, http.StatusInternalServerError, errMsgInternal)
		}
	}()

	if r.Method != http.MethodPost {
		return h.writeError(w, http.StatusMethodNotAllowed, errMsgMethod)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Handle == nil {
		return h.writeError(w, http.StatusBadRequest, errMsgInvalidHandle)
	}

	handle := account.Normalize(*req.Handle)

	if err := account.Validate(handle); err != nil {
		if errors.Is(err, account.ErrEmptyHandle) {
			return h.writeError(w, http.StatusBadRequest, errMsgEmptyHandle)
		}

		return h.writeError(w, http.StatusBadRequest, errMsgInvalidFormat)
	}

	metrics := account.Derive(handle)

	// Enrichment is best-effort: a hit replaces the generated name, every
	// failure keeps the derived metrics untouched.
	if name, ok := h.enricher.DisplayName(r.Context(), handle); ok {
		metrics.Name = name
	}

	logger.Info().
		Str("handle", handle).
		Int("followers", metrics.Followers).
		Msg("handle analyzed")

	return h.writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) int {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("write json failed")
	}

	return status
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) int {
	return h.writeJSON(w, status, map[string]string{"error": message})
}
