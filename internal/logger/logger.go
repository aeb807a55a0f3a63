package logger

import (
	"io"
	"log/slog"

	"github.com/hmseo/gungwol/internal/config"
)

// Setup configures the global slog logger based on environment.
// Output goes to w so terminal hosts can keep log lines out of the
// game transcript.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
