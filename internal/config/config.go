package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Environment    string
	LogLevel       slog.Level
	LogFile        string        // console logs go here since the UI owns stdout
	RedisURL       string        // empty disables event broadcasting
	ScenarioFile   string
	PublishTimeout time.Duration // per movement event
}

func Load() *Config {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:        getEnv("LOG_FILE", "text-adventure.log"),
		RedisURL:       getEnv("REDIS_URL", ""),
		ScenarioFile:   getEnv("SCENARIO_FILE", "data/scenarios/lighthouse_cove.yaml"),
		PublishTimeout: parseDuration(getEnv("PUBLISH_TIMEOUT", "2s"), 2*time.Second),
	}
}

// BroadcastEnabled reports whether movement events should be published.
func (c *Config) BroadcastEnabled() bool {
	return c.RedisURL != ""
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
