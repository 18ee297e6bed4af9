package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/Validium-Chain/validium-cli/cmd"
	"github.com/Validium-Chain/validium-cli/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger()

	outputDir := filepath.Join("docs")
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	log.Info().Msg("Generating docs...")
	if err := generate(cmd.RootCmd, outputDir); err != nil {
		log.Error().Msgf("Error generating documentation: %v", err)
		os.Exit(1)
	}
	log.Info().Msgf("Documentation generated in %s", outputDir)
}

// generate writes one markdown page per command of root into outputDir.
func generate(root *cobra.Command, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, outputDir)
}
