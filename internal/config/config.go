// Package config centralises configuration parsing for the workout tracker.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the tracker CLI and API.
type Config struct {
	HTTPAddress        string
	JWTSecret          string
	JWTIssuer          string
	KafkaBrokers       []string // Empty disables event publishing.
	SummaryTopic       string
	KafkaBatchSize     int
	PublishTimeout     time.Duration
	CORSAllowedOrigins []string
	LogLevel           slog.Level
	LogFormat          string
	WalkingFormula     string
	ShutdownTimeout    time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:        getEnv("HTTP_ADDRESS", ":8080"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:          getEnv("JWT_ISSUER", "i5e.identity"),
		KafkaBrokers:       splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		SummaryTopic:       getEnv("SUMMARY_TOPIC", "workout_summaries"),
		KafkaBatchSize:     getIntEnv("KAFKA_BATCH_SIZE", 100),
		PublishTimeout:     getDurationEnv("PUBLISH_TIMEOUT", 5*time.Second),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
		WalkingFormula:     strings.ToLower(getEnv("WALKING_FORMULA", "floor")),
		ShutdownTimeout:    getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// PublishingEnabled reports whether brokers are configured.
func (c Config) PublishingEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// NewLogger creates a structured logger writing to w at the configured level and format.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
