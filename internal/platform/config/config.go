package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"local"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Analysis client
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// Profile enrichment
	EnrichmentEnabled   bool          `env:"ENRICHMENT_ENABLED" envDefault:"true"`
	ProfileBaseURL      string        `env:"PROFILE_BASE_URL" envDefault:"https://www.instagram.com"`
	ProfileFetchTimeout time.Duration `env:"PROFILE_FETCH_TIMEOUT" envDefault:"5s"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}
