package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	output       io.Writer
	level        zerolog.Level
	excludeParts []string
	isDev        bool
}

// Option configures the logger
type Option func(*Config)

func (o Option) apply(cfg *Config) {
	o(cfg)
}

// WithLevel sets the logger level by name ("debug", "info", "warn"/"warning", "error").
func WithLevel(level string) Option {
	return func(cfg *Config) {
		cfg.level = parseLevel(level)
	}
}

// WithConsoleWriter toggles the tagged console format. JSON lines are written when false.
func WithConsoleWriter(isDev bool) Option {
	return func(cfg *Config) {
		cfg.isDev = isDev
	}
}

// WithOutput sets the output writer
func WithOutput(output io.Writer) Option {
	return func(cfg *Config) {
		cfg.output = output
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
