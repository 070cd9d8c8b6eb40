// Package logging wires the process-wide structured logger. Both
// binaries log to stdout so container runtimes capture a single stream.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the default slog logger. Unknown levels fall back to
// info, unknown formats to JSON.
func Init(level, format string) {
	minLevel := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		minLevel = slog.LevelDebug
	case "warn":
		minLevel = slog.LevelWarn
	case "error":
		minLevel = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: minLevel}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
