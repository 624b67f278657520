// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/budget-control/backend/config"
)

// FormatText selects the colourised developer handler.
const FormatText = "text"

// NewLogger builds a logger writing to w in the configured format and level.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)

	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup installs the configured logger as the slog default.
func Setup(cfg config.LogConfig, w io.Writer) *slog.Logger {
	logger := NewLogger(cfg, w)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps debug, info, warn and error to slog levels. Unknown values mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
