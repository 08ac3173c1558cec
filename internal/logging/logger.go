// Package logging builds the structured slog.Logger used by the aocsearch
// command and the puzzle runner.
//
// Search packages never log; only the outer layers do.
//
// Usage:
//
//	log := logging.New(logging.Config{Level: logging.LevelDebug})
//	log.Info("puzzle solved", "id", "2016-13", "elapsed", d)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for per-puzzle detail such as input size and the loaded config.
	LevelDebug Level = iota
	// LevelInfo is for puzzle start and finish messages.
	LevelInfo
	// LevelWarn is for recoverable oddities, e.g. a missing input file.
	LevelWarn
	// LevelError is for failed puzzles.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts a case-insensitive level name ("debug", "info",
// "warn"/"warning", "error").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures New. A zero Config logs Info and above as text to stderr.
type Config struct {
	// Level sets the minimum level; messages below it are discarded.
	Level Level

	// JSON selects the JSON handler instead of the text handler.
	JSON bool

	// Service, if set, is attached to every record as "service".
	Service string

	// Writer overrides the destination. Default: os.Stderr.
	Writer io.Writer
}

// New returns a logger configured by cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	log := slog.New(h)
	if cfg.Service != "" {
		log = log.With("service", cfg.Service)
	}

	return log
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
