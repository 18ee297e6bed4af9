package testutil

import (
	"bytes"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Validium-Chain/validium-cli/internal/logger"
)

func NewTestLogger() *zerolog.Logger {
	return logger.New(
		logger.WithOutput(os.Stdout),
		logger.WithLevel("debug"),
	)
}

// NewBufferedLogger tees the tagged console output into a buffer the test can inspect.
func NewBufferedLogger() (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(io.MultiWriter(os.Stdout, &buf)),
		logger.WithLevel("debug"),
	)
	return log, &buf
}
