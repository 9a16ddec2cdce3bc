package parser

import (
	"log/slog"

	"github.com/4nd3r5on/go-inifile/common"
)

type Config struct {
	Logger        *slog.Logger
	MaxLineLength int

	// AllowEmptyValues controls whether a key-value line whose value trims
	// to nothing is a valid (empty) entry or an invalid line.
	AllowEmptyValues bool
}

var DefaultConfig = &Config{
	Logger:           slog.Default(),
	MaxLineLength:    common.DefaultMaxLineLength,
	AllowEmptyValues: true,
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
