// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultAPIURL is the content service used when FOLIO_API_URL is unset.
const DefaultAPIURL = "https://personal-web-srv9.onrender.com"

// Config is the externally visible configuration.
type Config struct {
	// APIURL is the base host every resource path is joined to.
	APIURL string `env:"FOLIO_API_URL" envDefault:"https://personal-web-srv9.onrender.com"`

	LogLevel string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// OTelEndpoint enables OTLP trace export when set.
	OTelEndpoint string `env:"FOLIO_OTEL_ENDPOINT"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
