// Package logger provides structured logging setup for the regress CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format values accepted by Setup.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Accepted: debug, info, warn, error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (want debug|info|warn|error)", s)
	}
}

// Setup builds a logger writing to w at the given level, with a JSON or text
// handler depending on format, and installs it as the slog default.
func Setup(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q (want json|text)", format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, nil
}
