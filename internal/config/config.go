// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Ranking RankingConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// RankingConfig holds limits for the ranking engine.
// Work per search grows with candidates x preference entries, so both are bounded.
type RankingConfig struct {
	MaxCandidates        int           `env:"RANKING_MAX_CANDIDATES" envDefault:"500"`
	MaxPreferenceEntries int           `env:"RANKING_MAX_PREFERENCE_ENTRIES" envDefault:"50"`
	BatchMaxSearches     int           `env:"RANKING_BATCH_MAX_SEARCHES" envDefault:"10"`
	BatchConcurrency     int           `env:"RANKING_BATCH_CONCURRENCY" envDefault:"4"`
	RequestTimeout       time.Duration `env:"RANKING_REQUEST_TIMEOUT" envDefault:"5s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateRanking(cfg.Ranking); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateRanking(r RankingConfig) error {
	if r.MaxCandidates < 1 || r.MaxCandidates > 10000 {
		return fmt.Errorf("RANKING_MAX_CANDIDATES must be between 1 and 10000, got %d", r.MaxCandidates)
	}
	if r.MaxPreferenceEntries < 1 || r.MaxPreferenceEntries > 1000 {
		return fmt.Errorf("RANKING_MAX_PREFERENCE_ENTRIES must be between 1 and 1000, got %d", r.MaxPreferenceEntries)
	}
	if r.BatchMaxSearches < 1 {
		return fmt.Errorf("RANKING_BATCH_MAX_SEARCHES must be positive, got %d", r.BatchMaxSearches)
	}
	if r.BatchConcurrency < 1 {
		return fmt.Errorf("RANKING_BATCH_CONCURRENCY must be positive, got %d", r.BatchConcurrency)
	}
	if r.BatchConcurrency > r.BatchMaxSearches {
		return fmt.Errorf("RANKING_BATCH_CONCURRENCY (%d) should not exceed RANKING_BATCH_MAX_SEARCHES (%d)",
			r.BatchConcurrency, r.BatchMaxSearches)
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RANKING_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
