package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Validium-Chain/validium-cli/internal/ui"
)

const DefaultLogLevel = "info"

// New creates a new logger instance
func New(opts ...Option) *zerolog.Logger {
	// Default config
	config := &Config{
		output:       os.Stdout,
		level:        zerolog.InfoLevel,
		excludeParts: []string{zerolog.TimestampFieldName},
		isDev:        true,
	}

	// Apply options
	for _, opt := range opts {
		opt.apply(config)
	}

	logger := zerolog.New(config.output).
		Level(config.level).
		With().
		Logger()

	// Tagged, colored lines for terminal use
	if config.isDev {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:          config.output,
			PartsExclude: config.excludeParts,
			FormatLevel: func(i interface{}) string {
				return ui.RenderLevel(fmt.Sprint(i))
			},
		})
	}

	return &logger
}

// NewConsoleLogger is the logger every command writes to. It shares stdout with the
// hardhat and npm children so lines stay in order.
func NewConsoleLogger() *zerolog.Logger {
	return New(
		WithLevel(DefaultLogLevel),
		WithOutput(os.Stdout),
		WithConsoleWriter(true),
	)
}
