package runtime

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Validium-Chain/validium-cli/internal/runner"
	"github.com/Validium-Chain/validium-cli/internal/settings"
)

// RunnerFactory builds the runner handlers execute their steps with.
type RunnerFactory func(log *zerolog.Logger) runner.Runner

type Context struct {
	Logger    *zerolog.Logger
	Viper     *viper.Viper
	Settings  *settings.Settings
	NewRunner RunnerFactory
	Runner    runner.Runner
}

func NewContext(logger *zerolog.Logger, viper *viper.Viper) *Context {
	return &Context{
		Logger: logger,
		Viper:  viper,
		NewRunner: func(log *zerolog.Logger) runner.Runner {
			return runner.NewShellRunner(log)
		},
	}
}

// AttachSettings resolves settings and picks the runner. It runs after the logger has been
// adjusted for --verbose so the runner logs at the right level.
func (ctx *Context) AttachSettings() error {
	var err error

	ctx.Settings, err = settings.New(ctx.Logger, ctx.Viper)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if ctx.Settings.DryRun {
		ctx.Runner = runner.NewDryRunRunner(ctx.Logger)
	} else {
		ctx.Runner = ctx.NewRunner(ctx.Logger)
	}

	return nil
}
