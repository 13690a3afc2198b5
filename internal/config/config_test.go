package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "REDIS_URL", "SCENARIO_FILE", "PUBLISH_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text-adventure.log", cfg.LogFile)
	assert.Equal(t, "", cfg.RedisURL)
	assert.False(t, cfg.BroadcastEnabled())
	assert.Equal(t, "data/scenarios/lighthouse_cove.yaml", cfg.ScenarioFile)
	assert.Equal(t, 2*time.Second, cfg.PublishTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SCENARIO_FILE", "world.yaml")
	t.Setenv("PUBLISH_TIMEOUT", "500ms")

	cfg := Load()
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.BroadcastEnabled())
	assert.Equal(t, "world.yaml", cfg.ScenarioFile)
	assert.Equal(t, 500*time.Millisecond, cfg.PublishTimeout)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, time.Second, parseDuration("1s", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("-1s", time.Minute))
}
