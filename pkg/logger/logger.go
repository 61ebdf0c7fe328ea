// Package logger builds the structured logger shared by the service.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON logger writing to stdout at the given level
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a JSON logger writing to w at the given level.
// Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("service", "product-service")
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
