package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "KAFKA_BROKERS", "SUMMARY_TOPIC", "LOG_LEVEL", "WALKING_FORMULA", "PUBLISH_TIMEOUT", "KAFKA_BATCH_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Empty(t, cfg.KafkaBrokers)
	require.False(t, cfg.PublishingEnabled())
	require.Equal(t, "workout_summaries", cfg.SummaryTopic)
	require.Equal(t, 100, cfg.KafkaBatchSize)
	require.Equal(t, 5*time.Second, cfg.PublishTimeout)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, "floor", cfg.WalkingFormula)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("PUBLISH_TIMEOUT", "250ms")
	t.Setenv("KAFKA_BATCH_SIZE", "10")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("WALKING_FORMULA", "Real")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.True(t, cfg.PublishingEnabled())
	require.Equal(t, 250*time.Millisecond, cfg.PublishTimeout)
	require.Equal(t, 10, cfg.KafkaBatchSize)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, "real", cfg.WalkingFormula)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PUBLISH_TIMEOUT", "soon")
	t.Setenv("KAFKA_BATCH_SIZE", "many")

	cfg := Load()
	require.Equal(t, 5*time.Second, cfg.PublishTimeout)
	require.Equal(t, 100, cfg.KafkaBatchSize)
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{LogLevel: slog.LevelInfo, LogFormat: "json"})
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.True(t, strings.HasPrefix(out, "{"), out)
	require.Contains(t, out, `"k":"v"`)
}
