package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/instagram-analyzer/internal/core/profile"
	"github.com/lueurxax/instagram-analyzer/internal/platform/config"
	"github.com/lueurxax/instagram-analyzer/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enricherLogger := logger.With().Str("component", "enricher").Logger()
	enricher := profile.NewEnricher(
		profile.NewFetcher(cfg.ProfileBaseURL, cfg.ProfileFetchTimeout),
		cfg.EnrichmentEnabled,
		&enricherLogger,
	)

	handlerLogger := logger.With().Str("component", "server").Logger()
	handler := server.NewHandler(enricher, &handlerLogger)

	if err := server.NewServer(handler, cfg.Port, &handlerLogger).Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("analyzer stopped")
			return
		}

		logger.Fatal().Err(err).Msg("analyzer error")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
