package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured JSON logger using slog.
func New(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

// Discard returns a logger that drops every record. Used when a component is
// built without a logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
