// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aristath/investai/internal/modules/market_hours"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// Config holds application configuration
type Config struct {
	Port     int    `envconfig:"PORT" default:"8001"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Human-readable console output instead of JSON lines
	LogPretty bool `envconfig:"LOG_PRETTY" default:"true"`
	DevMode   bool `envconfig:"DEV_MODE" default:"false"`

	MarketTimezone string `envconfig:"MARKET_TIMEZONE" default:"Asia/Kolkata"`
	MarketOpen     string `envconfig:"MARKET_OPEN" default:"09:15"`
	MarketClose    string `envconfig:"MARKET_CLOSE" default:"15:30"`

	StatusSchedule  string        `envconfig:"STATUS_SCHEDULE" default:"@every 1m"`
	StreamHeartbeat time.Duration `envconfig:"STREAM_HEARTBEAT" default:"30s"`
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", c.Port)
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}

	if _, err := c.Session(); err != nil {
		return fmt.Errorf("invalid market session: %w", err)
	}

	if _, err := cron.ParseStandard(c.StatusSchedule); err != nil {
		return fmt.Errorf("invalid STATUS_SCHEDULE %q: %w", c.StatusSchedule, err)
	}

	if c.StreamHeartbeat <= 0 {
		return fmt.Errorf("invalid STREAM_HEARTBEAT %s: must be positive", c.StreamHeartbeat)
	}

	return nil
}

// Session returns the configured trading session
func (c *Config) Session() (market_hours.Session, error) {
	return market_hours.NewSession(c.MarketTimezone, c.MarketOpen, c.MarketClose)
}
