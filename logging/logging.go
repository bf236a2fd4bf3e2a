package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config holds configuration for a resolution trace logger.
type Config struct {
	// Level is parsed case-insensitively; invalid or empty means info.
	Level string
	// Component is attached to every record when non-empty.
	Component string
}

// New creates a slog.Logger with a JSON handler writing to w.
func New(config Config, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	})

	logger := slog.New(handler)
	if config.Component != "" {
		logger = logger.With(slog.String("component", config.Component))
	}

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
