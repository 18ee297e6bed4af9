package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Validium-Chain/validium-cli/internal/constants"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
)

// Default placeholder value, overridden with -ldflags "-X .../cmd/version.Version=v0.1.0"
var Version = constants.DevelopmentVersion

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the validium-cli version",
		Long:  "This command prints the current version of the validium-cli",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), constants.Package.Name, Version)
			return err
		},
	}

	return versionCmd
}
