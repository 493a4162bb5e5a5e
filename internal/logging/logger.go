// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config captures where logs go and how verbose they are.
type Config struct {
	// Level is the textual log level (debug, info, warn, error).
	Level string
	// File is the log destination. "-" means stderr; empty discards logs.
	File string
}

// ParseLevel converts textual levels into zerolog levels, defaulting to info.
func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug", "dbg":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing JSON lines to w at the configured level.
func New(w io.Writer, cfg Config) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Open resolves cfg.File to a writer and builds a logger on it. The returned
// closer releases the file; it is a no-op for stderr and discard.
func Open(cfg Config) (zerolog.Logger, io.Closer, error) {
	switch cfg.File {
	case "":
		return New(io.Discard, cfg), nopCloser{}, nil
	case "-":
		return New(os.Stderr, cfg), nopCloser{}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file %q: %w", cfg.File, err)
	}
	return New(f, cfg), f, nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
