package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a config string to a slog level. Unknown values fall back
// to info and report false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds the process logger: colored console output for local
// development, JSON everywhere else.
func New(w io.Writer, level string, dev bool) *slog.Logger {
	lvl, known := ParseLevel(level)

	var handler slog.Handler
	if dev {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	}

	logger := slog.New(handler)
	if !known {
		logger.Warn("unknown log level, defaulting to info", "level", level)
	}
	return logger
}
