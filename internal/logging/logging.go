// Package logging builds the diagnostic logger. The TUI owns stdout and
// stderr while the program runs, so logs go to the configured file only; with
// no file configured the logger discards everything.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// levelEnvKey names the environment variable selecting the log level.
const levelEnvKey = "LOG_LEVEL"

// ParseLevel maps a level name (debug, info, warn, error) to its slog level.
// Unknown or empty names mean info.
func ParseLevel(s string) slog.Level {
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

// Open returns the logger writing JSON lines to the file at path, creating
// or appending as needed, with the level taken from LOG_LEVEL. An empty path
// disables logging. The caller closes the returned closer on shutdown.
func Open(path string) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: ParseLevel(os.Getenv(levelEnvKey)),
	})
	return slog.New(handler), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
