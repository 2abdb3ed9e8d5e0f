package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mynetwrk-backend/internal/config"
)

// redactedKeys never reach the log output with their value.
var redactedKeys = map[string]struct{}{
	"access_token":  {},
	"refresh_token": {},
	"code":          {},
	"authorization": {},
	"api_key":       {},
}

// NewLogger builds the process logger, tags every record with the
// service name and build version, and installs it as slog's default.
// Format "text" adds source locations; anything else is JSON.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", "mynetwrk"),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
