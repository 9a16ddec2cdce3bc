package store

import (
	"log/slog"

	"github.com/4nd3r5on/go-inifile/common"
)

type Config struct {
	Logger           *slog.Logger
	MaxLineLength    int
	AllowEmptyValues bool

	// CaseSensitive switches section-name and key comparison to exact case.
	// Comparison only; stored names and keys always keep their original casing.
	CaseSensitive bool
}

var DefaultConfig = &Config{
	Logger:           slog.Default(),
	MaxLineLength:    common.DefaultMaxLineLength,
	AllowEmptyValues: true,
	CaseSensitive:    false,
}

type Option func(*Config)

func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func WithMaxLineLength(n int) Option {
	return func(c *Config) {
		c.MaxLineLength = n
	}
}

func WithAllowEmptyValues(allow bool) Option {
	return func(c *Config) {
		c.AllowEmptyValues = allow
	}
}

func WithCaseSensitive(sensitive bool) Option {
	return func(c *Config) {
		c.CaseSensitive = sensitive
	}
}
