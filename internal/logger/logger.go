// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

var defaultLogger *slog.Logger

// Init configures the global logger. The terminal belongs to the game
// screen, so callers pass a file or io.Discard rather than stdout.
func Init(level string, json bool, w io.Writer) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
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

// Get returns the global logger, discarding output until Init is called.
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("info", false, io.Discard)
	}
	return defaultLogger
}

// With returns the global logger with the given attributes attached.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}
