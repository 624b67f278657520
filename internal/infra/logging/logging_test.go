package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-control/backend/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for raw, expected := range tests {
		assert.Equal(t, expected, ParseLevel(raw), raw)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "info", Format: "text"}, &buf)

	logger.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "key=")
	assert.False(t, json.Valid(buf.Bytes()))
}
