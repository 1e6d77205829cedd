// Package logger builds the process slog.Logger.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/config"
)

// New creates a logger writing to w in the configured format, with a
// "service" attribute on every record.
func New(cfg config.Logging, w io.Writer) *slog.Logger {
	log, _ := NewLeveled(cfg, w)
	return log
}

// NewLeveled is New with a level that can be changed after construction.
func NewLeveled(cfg config.Logging, w io.Writer) (*slog.Logger, *slog.LevelVar) {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "quoteforge"), level
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
