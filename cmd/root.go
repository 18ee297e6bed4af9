package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Validium-Chain/validium-cli/cmd/compile"
	"github.com/Validium-Chain/validium-cli/cmd/create"
	"github.com/Validium-Chain/validium-cli/cmd/deploy"
	"github.com/Validium-Chain/validium-cli/cmd/interact"
	"github.com/Validium-Chain/validium-cli/cmd/version"
	"github.com/Validium-Chain/validium-cli/internal/constants"
	"github.com/Validium-Chain/validium-cli/internal/logger"
	"github.com/Validium-Chain/validium-cli/internal/runner"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
	"github.com/Validium-Chain/validium-cli/internal/settings"
	"github.com/Validium-Chain/validium-cli/internal/ui"
	"github.com/Validium-Chain/validium-cli/internal/update"
)

var rootContext = runtime.NewContext(createLogger(), createViper())

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand(rootContext)

func Execute() {
	if code := run(RootCmd, rootContext); code != constants.ProcessCode.Success {
		os.Exit(code)
	}
}

// run executes the command tree and turns its error into a process exit code. A failed step
// has already been reported by the runner, anything else is logged here once.
func run(rootCmd *cobra.Command, runtimeContext *runtime.Context) int {
	err := rootCmd.Execute()
	if err == nil {
		return constants.ProcessCode.Success
	}

	var stepErr *runner.StepError
	if !errors.As(err, &stepErr) {
		runtimeContext.Logger.Error().Msg(err.Error())
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return constants.ProcessCode.Success
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return constants.ProcessCode.Failure
}

func NewRootCommand(runtimeContext *runtime.Context) *cobra.Command {
	var pendingUpdate *update.Pending

	// By defining a Run func, we force PersistentPreRunE to execute
	// even when 'validium-cli' is called with no subcommand
	helpRunE := func(cmd *cobra.Command, args []string) error {
		err := cmd.Help()
		if err != nil {
			return fmt.Errorf("fail to show help: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               constants.Package.Name,
		Short:             "Validium CLI tool",
		Long:              constants.Package.Description + ".",
		DisableAutoGenTag: true,
		SilenceErrors:     true,
		RunE:              helpRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// past argument parsing, failures are not usage errors
			cmd.SilenceUsage = true

			v := runtimeContext.Viper

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if verbose := v.GetBool(settings.Flags.Verbose.Name); verbose {
				newLogger := runtimeContext.Logger.Level(zerolog.DebugLevel)
				runtimeContext.Logger = &newLogger
			}

			if isLoadEnvAndSettings(cmd) {
				if err := runtimeContext.AttachSettings(); err != nil {
					return fmt.Errorf("%w", err)
				}
			}

			if isCheckForUpdates(cmd) && update.Enabled() {
				checker := update.NewChecker(runtimeContext.Logger)
				pendingUpdate = checker.Start(cmd.Context(), version.Version)
			}

			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if notice := pendingUpdate.Notice(constants.UpdateNoticeGrace); notice != "" {
				ui.Warning(cmd.ErrOrStderr(), notice)
			}
		},
	}

	cobra.AddTemplateFunc("hasUngrouped", func(c *cobra.Command) bool {
		for _, cmd := range c.Commands() {
			if cmd.IsAvailableCommand() && !cmd.Hidden && cmd.GroupID == "" {
				return true
			}
		}
		return false
	})

	cobra.AddTemplateFunc("wrappedFlagUsages", func(fs *pflag.FlagSet) string {
		// 100 = wrap width
		return strings.TrimRight(fs.FlagUsagesWrapped(100), "\n")
	})

	rootCmd.SetHelpTemplate(`
{{- with (or .Long .Short)}}{{.}}{{end}}

Usage:
{{- if .Runnable}}
  {{.UseLine}}
{{- else if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]
{{- end}}

{{- if .HasAvailableSubCommands}}

Available Commands:
  {{- range $grp := .Groups}}

  {{printf "%s:" $grp.Title}}
    {{- range $.Commands}}
      {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID $grp.ID))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
      {{- end}}
    {{- end}}
  {{- end}}

  {{- if hasUngrouped .}}
{{- if .Groups}}

  Other:
{{- end}}
    {{- range .Commands}}
      {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID ""))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
      {{- end}}
    {{- end}}
  {{- end}}
{{- end}}

{{- if .HasExample}}

Examples:
{{.Example}}
{{- end }}

{{- if .HasAvailableLocalFlags}}

Flags:
{{wrappedFlagUsages .LocalFlags}}
{{- end }}

{{- if .HasAvailableInheritedFlags}}

Global Flags:
{{wrappedFlagUsages .InheritedFlags}}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{- end }}

Tip: New here? Run:
  $ validium-cli create
    to scaffold your first Validium project.

Need more help?
  Visit ` + constants.DefaultDocsURL + `
`)

	// Definition of global flags:
	// env file flag is present for every subcommand
	rootCmd.PersistentFlags().StringP(
		settings.Flags.CliEnvFile.Name,
		settings.Flags.CliEnvFile.Short,
		constants.DefaultEnvFileName,
		fmt.Sprintf("Path to %s file with variables for the hardhat scripts", constants.DefaultEnvFileName),
	)

	// verbose flag is present in every subcommand
	rootCmd.PersistentFlags().BoolP(
		settings.Flags.Verbose.Name,
		settings.Flags.Verbose.Short,
		false,
		"Run command in VERBOSE mode",
	)

	rootCmd.PersistentFlags().Bool(
		settings.Flags.DryRun.Name,
		false,
		"Print the commands that would run without executing them",
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	createCmd := create.New(runtimeContext)
	compileCmd := compile.New(runtimeContext)
	deployCmd := deploy.New(runtimeContext)
	interactCmd := interact.New(runtimeContext)
	versionCmd := version.New(runtimeContext)

	// Define groups (order controls display order)
	rootCmd.AddGroup(&cobra.Group{ID: "getting-started", Title: "Getting Started"})
	rootCmd.AddGroup(&cobra.Group{ID: "contract", Title: "Contract"})

	createCmd.GroupID = "getting-started"

	compileCmd.GroupID = "contract"
	deployCmd.GroupID = "contract"
	interactCmd.GroupID = "contract"

	rootCmd.AddCommand(
		createCmd,
		compileCmd,
		deployCmd,
		interactCmd,
		versionCmd,
	)

	return rootCmd
}

func isLoadEnvAndSettings(cmd *cobra.Command) bool {
	// Only the commands that spawn processes need the .env file and a runner
	var includedCommands = map[string]struct{}{
		constants.Commands.Create:   {},
		constants.Commands.Compile:  {},
		constants.Commands.Deploy:   {},
		constants.Commands.Interact: {},
	}

	_, exists := includedCommands[cmd.Name()]
	return exists
}

func isCheckForUpdates(cmd *cobra.Command) bool {
	var excludedCommands = map[string]struct{}{
		"bash":       {},
		"fish":       {},
		"powershell": {},
		"zsh":        {},
		"help":       {},
		"completion": {},
	}

	_, exists := excludedCommands[cmd.Name()]
	return !exists
}

func createLogger() *zerolog.Logger {
	return logger.NewConsoleLogger()
}

func createViper() *viper.Viper {
	return viper.New() //nolint:forbidigo
}
