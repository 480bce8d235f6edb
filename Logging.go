package main

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogging configures the global slog logger from the LOG_LEVEL
// environment value ("debug", "info", "warn", "error"; default info).
func SetupLogging(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(level string) slog.Level {
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
