// Package logging provides structured logging utilities using log/slog.
// It offers helper functions for creating loggers with consistent
// configuration and request-scoped enrichment.
package logging

import (
	"context"
	"log/slog"
	"os"

	"pressroom/internal/handler/http/requestid"
)

// NewLogger creates a new structured logger with JSON output.
// The log level is controlled via the LOG_LEVEL environment variable
// (debug, info, warn, error; default info). Source locations are added
// at debug level.
func NewLogger() *slog.Logger {
	logLevel := parseLevel(os.Getenv("LOG_LEVEL"))

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelDebug,
	})

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
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

// WithRequestID returns a logger that includes the request ID from the
// context, enabling request tracing across log entries. The logger is
// returned unchanged when no request ID is present.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
