// Package logger configures the process-wide slog logger used by lnkctl.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the global logger. It discards everything until Init is called.
var L = slog.New(slog.DiscardHandler)

// Config selects the level, handler format and destination.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output string // stderr, stdout, or a file path
}

// ParseLevel maps a level name to a slog.Level. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a logger writing to w according to cfg. cfg.Output is ignored.
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// Init replaces L according to cfg and returns a function that closes the
// output when it is a file.
func Init(cfg Config) (func() error, error) {
	w, closeFn, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	l, err := New(cfg, w)
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	L = l
	return closeFn, nil
}

func openOutput(dest string) (io.Writer, func() error, error) {
	switch strings.ToLower(dest) {
	case "stderr", "":
		return os.Stderr, func() error { return nil }, nil
	case "stdout":
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %q: %w", dest, err)
	}
	return f, f.Close, nil
}
