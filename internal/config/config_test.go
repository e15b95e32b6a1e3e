package config

import (
	"os"
	"testing"
	"time"

	"github.com/aristath/investai/internal/modules/market_hours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:            8001,
		LogLevel:        "info",
		MarketTimezone:  "Asia/Kolkata",
		MarketOpen:      "09:15",
		MarketClose:     "15:30",
		StatusSchedule:  "@every 1m",
		StreamHeartbeat: 30 * time.Second,
	}
}

var envKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_PRETTY", "DEV_MODE",
	"MARKET_TIMEZONE", "MARKET_OPEN", "MARKET_CLOSE",
	"STATUS_SCHEDULE", "STREAM_HEARTBEAT",
}

// isolateEnv unsets every config variable and moves into an empty directory
// so neither the shell nor a developer .env leaks into the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, "Asia/Kolkata", cfg.MarketTimezone)
	assert.Equal(t, "09:15", cfg.MarketOpen)
	assert.Equal(t, "15:30", cfg.MarketClose)
	assert.Equal(t, "@every 1m", cfg.StatusSchedule)
	assert.Equal(t, 30*time.Second, cfg.StreamHeartbeat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("MARKET_CLOSE", "16:00")
	t.Setenv("STATUS_SCHEDULE", "*/5 * * * *")
	t.Setenv("STREAM_HEARTBEAT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, "16:00", cfg.MarketClose)
	assert.Equal(t, "*/5 * * * *", cfg.StatusSchedule)
	assert.Equal(t, 5*time.Second, cfg.StreamHeartbeat)
}

func TestLoad_MalformedValue(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MARKET_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	assert.ErrorIs(t, err, market_hours.ErrUnsupportedTimezone)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"warning level", func(c *Config) { c.LogLevel = "WARNING" }, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad open", func(c *Config) { c.MarketOpen = "9.15" }, true},
		{"bad close", func(c *Config) { c.MarketClose = "25:00" }, true},
		{"bad schedule", func(c *Config) { c.StatusSchedule = "sometimes" }, true},
		{"zero heartbeat", func(c *Config) { c.StreamHeartbeat = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession(t *testing.T) {
	session, err := validConfig().Session()
	require.NoError(t, err)
	assert.Equal(t, market_hours.IndiaSession.Open, session.Open)
	assert.Equal(t, market_hours.IndiaSession.Close, session.Close)
	assert.Equal(t, "Asia/Kolkata", session.Location.String())
}
