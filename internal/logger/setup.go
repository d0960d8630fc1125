package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup initializes the default slog logger from the configured level and
// format. Format "json" produces structured output for production; anything
// else falls back to the text handler.
func Setup(level, format string) {
	SetupWithWriter(level, format, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output writer, used by tests.
func SetupWithWriter(level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
