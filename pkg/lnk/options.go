package lnk

import (
	"context"
	"log/slog"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// ShellLink is the decoded link (re-exported for convenience).
type ShellLink = types.ShellLink

// Limits bounds the file entry point (re-exported for convenience).
type Limits = types.Limits

// Option configures a decode call.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	codePage encoding.Encoding
	limits   Limits
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger:   discardLogger,
		codePage: format.DefaultCodePage,
		limits:   types.DefaultLimits(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithLogger routes debug records about section boundaries and skipped
// blocks to l. A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCodePage sets the code page used for ANSI strings. Links store ANSI
// strings in the writer's system code page; the default is Windows-1252.
func WithCodePage(enc encoding.Encoding) Option {
	return func(c *config) {
		if enc != nil {
			c.codePage = enc
		}
	}
}

// WithLimits replaces the limits enforced by DecodeFile.
func WithLimits(l Limits) Option {
	return func(c *config) {
		c.limits = l
	}
}

func (c *config) debug(msg string, args ...any) {
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug(msg, args...)
	}
}

func (c *config) ansi(b []byte) (string, error) {
	return format.DecodeANSI(b, c.codePage)
}
