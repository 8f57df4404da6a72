package slogobs

import (
	"log/slog"
	"os"
	"strings"
)

// LevelFromEnv resolves the minimum log level from the DECKGEN_LOG_LEVEL
// environment variable. Recognised values (case-insensitive): trace, debug,
// info, warn, error. Unset or unrecognised values default to info.
func LevelFromEnv() slog.Level {
	return parseLevel(os.Getenv("DECKGEN_LOG_LEVEL"))
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return slog.LevelDebug - 4
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
