package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns the service logger configured from GO_ENV and LOG_LEVEL.
// Production writes JSON, anything else writes text. LOG_LEVEL is one of
// debug, info, warn or error (default info); debug also records the source line.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}
	if opts.Level == slog.LevelDebug {
		opts.AddSource = true
	}

	var h slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h).With("service", "startupambassadors")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
