package interact

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Validium-Chain/validium-cli/cmd/common"
	"github.com/Validium-Chain/validium-cli/internal/commands"
	"github.com/Validium-Chain/validium-cli/internal/constants"
	"github.com/Validium-Chain/validium-cli/internal/runner"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
	"github.com/Validium-Chain/validium-cli/internal/validation"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	var interactCmd = &cobra.Command{
		Use:   "interact [script]",
		Short: "Interact with the Smart Contract",
		Long: `Runs a script against an already deployed contract.
The script defaults to ` + constants.DefaultInteractScript + `.`,
		Example: `  validium-cli interact
  validium-cli interact readGreeting.ts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHandler(runtimeContext)

			inputs := common.ResolveScript(args, constants.DefaultInteractScript)
			if err := h.ValidateInputs(inputs); err != nil {
				return err
			}
			return h.Execute(inputs)
		},
	}

	return interactCmd
}

type handler struct {
	log       *zerolog.Logger
	runner    runner.Runner
	envFile   string
	validated bool
}

func newHandler(ctx *runtime.Context) *handler {
	h := &handler{
		log:    ctx.Logger,
		runner: ctx.Runner,
	}
	if ctx.Settings != nil {
		h.envFile = ctx.Settings.EnvFile
	}
	return h
}

func (h *handler) ValidateInputs(inputs common.ScriptInputs) error {
	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}
	if err := validator.Struct(inputs); err != nil {
		return err
	}

	h.validated = true
	return nil
}

func (h *handler) Execute(inputs common.ScriptInputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}

	h.log.Info().Msg("Starting interaction...")
	common.WarnMissingWallet(h.log, h.envFile)

	// no step message: the script's own output is the progress report
	return runner.Sequence(h.log, h.runner, runner.Step{
		Command: commands.Interact(inputs.Script),
	})
}
