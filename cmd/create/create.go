package create

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Validium-Chain/validium-cli/internal/commands"
	"github.com/Validium-Chain/validium-cli/internal/constants"
	"github.com/Validium-Chain/validium-cli/internal/runner"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
	"github.com/Validium-Chain/validium-cli/internal/settings"
	"github.com/Validium-Chain/validium-cli/internal/ui"
	"github.com/Validium-Chain/validium-cli/internal/validation"
)

const successMessage = "All set! You are ready to get started with Validium Network 🎉"

type Inputs struct {
	ProjectName     string `validate:"required" cli:"project-name"`
	TemplateRepoURL string `validate:"required" cli:"template-repo"`
	DocsURL         string `validate:"required,url" cli:"docs-url"`
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var createCmd = &cobra.Command{
		Use:   "create [projectName]",
		Short: "Create a Validium Project",
		Long: `Clones the Validium quickstart repository into a new directory and installs its
npm dependencies. The directory defaults to ` + constants.DefaultProjectName + `.`,
		Example: `  validium-cli create
  validium-cli create my-dapp`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHandler(runtimeContext, cmd.OutOrStdout())

			inputs, err := h.ResolveInputs(args)
			if err != nil {
				return err
			}
			if err := h.ValidateInputs(inputs); err != nil {
				return err
			}
			return h.Execute(inputs)
		},
	}

	settings.AddTemplateRepoFlag(createCmd)

	return createCmd
}

type handler struct {
	log       *zerolog.Logger
	runner    runner.Runner
	settings  *settings.Settings
	out       io.Writer
	validated bool
}

func newHandler(ctx *runtime.Context, out io.Writer) *handler {
	return &handler{
		log:      ctx.Logger,
		runner:   ctx.Runner,
		settings: ctx.Settings,
		out:      out,
	}
}

func (h *handler) ResolveInputs(args []string) (Inputs, error) {
	inputs := Inputs{
		ProjectName:     constants.DefaultProjectName,
		TemplateRepoURL: constants.DefaultTemplateRepoURL,
		DocsURL:         constants.DefaultDocsURL,
	}
	if len(args) > 0 && args[0] != "" {
		inputs.ProjectName = args[0]
	}
	if h.settings != nil {
		inputs.TemplateRepoURL = h.settings.TemplateRepoURL
		inputs.DocsURL = h.settings.DocsURL
	}
	return inputs, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
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

// Execute clones the template and installs its dependencies. A failed clone never reaches
// npm, and whatever the clone left on disk stays there.
func (h *handler) Execute(inputs Inputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}

	h.log.Info().Msgf("Creating Project %s...", inputs.ProjectName)

	err := runner.Sequence(h.log, h.runner,
		runner.Step{
			Message: fmt.Sprintf("Cloning the repository to %s", inputs.ProjectName),
			Command: commands.Clone(inputs.TemplateRepoURL, inputs.ProjectName),
		},
		runner.Step{
			Message: "Installing dependencies...",
			Command: commands.Install(inputs.ProjectName),
		},
	)
	if err != nil {
		return err
	}

	ui.Success(h.out, successMessage)
	h.printNextSteps(inputs.ProjectName)
	h.log.Info().Msgf("For more information please visit: %s", ui.RenderURL(inputs.DocsURL))

	return nil
}

func (h *handler) printNextSteps(projectName string) {
	ui.Print(h.out, "")
	for _, line := range commands.NextSteps(projectName) {
		if strings.HasPrefix(line, " ") {
			ui.Print(h.out, ui.Indent(ui.RenderCode(line), 4))
			continue
		}
		ui.Print(h.out, ui.Indent(ui.RenderStep(line), 4))
	}
	ui.Print(h.out, "")
}
