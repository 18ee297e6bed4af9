package runner

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Validium-Chain/validium-cli/internal/constants"
)

// Step is one command line of a handler, with the message logged before it runs.
type Step struct {
	Message string
	Command string
}

// StepError reports the step that stopped a sequence. The runner has already logged why.
type StepError struct {
	Index   int
	Command string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d failed: %s", e.Index+1, e.Command)
}

// ExitCode is the process status the CLI exits with when a step fails.
func (e *StepError) ExitCode() int {
	return constants.ProcessCode.Failure
}

// Sequence runs steps in order and stops at the first one that fails.
func Sequence(log *zerolog.Logger, r Runner, steps ...Step) error {
	for i, step := range steps {
		if step.Message != "" {
			log.Info().Msg(step.Message)
		}
		if !r.Run(step.Command) {
			return &StepError{Index: i, Command: step.Command}
		}
	}
	return nil
}
