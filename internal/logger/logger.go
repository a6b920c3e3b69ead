package logger

import (
	"log/slog"
	"os"

	"github.com/coursedesk/coursedesk/internal/config"
)

// New creates a preconfigured slog.Logger writing JSON to stderr, leaving
// stdout free for rendered output.
func New(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
