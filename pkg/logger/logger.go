package logger

import (
	"log/slog"
	"os"
)

// New creates the process-wide JSON logger writing to stdout at the given
// minimum level. The server passes debug in development, info otherwise.
func New(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
