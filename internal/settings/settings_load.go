package settings

import (
	"github.com/spf13/cobra"
)

// Config names, readable from flags or VALIDIUM_* environment variables
const (
	TemplateRepoSettingName = "template-repo"
	DocsURLSettingName      = "docs-url"
)

type Flag struct {
	Name  string
	Short string
}

type flagNames struct {
	CliEnvFile Flag
	Verbose    Flag
	DryRun     Flag
}

var Flags = flagNames{
	CliEnvFile: Flag{"env", "e"},
	Verbose:    Flag{"verbose", "v"},
	DryRun:     Flag{"dry-run", ""},
}

// AddTemplateRepoFlag lets create point at a fork of the quickstart repository.
func AddTemplateRepoFlag(cmd *cobra.Command) {
	cmd.Flags().String(TemplateRepoSettingName, "", "Git URL of the project template to clone (defaults to the Validium quickstart repository)")
}
