package compile

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Validium-Chain/validium-cli/internal/commands"
	"github.com/Validium-Chain/validium-cli/internal/runner"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	var compileCmd = &cobra.Command{
		Use:   "compile",
		Short: "Compile the Smart Contracts",
		Long:  `Compiles the contracts of the current hardhat project with "npx hardhat compile".`,
		// extra arguments are accepted and ignored
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newHandler(runtimeContext).Execute()
		},
	}

	return compileCmd
}

type handler struct {
	log    *zerolog.Logger
	runner runner.Runner
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:    ctx.Logger,
		runner: ctx.Runner,
	}
}

func (h *handler) Execute() error {
	if h.runner == nil {
		return fmt.Errorf("no command runner configured")
	}

	h.log.Info().Msg("Starting compilation...")

	return runner.Sequence(h.log, h.runner, runner.Step{
		Message: "Setting up compilation environment...",
		Command: commands.Compile(),
	})
}
