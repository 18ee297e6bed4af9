package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Validium-Chain/validium-cli/cmd"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
	"github.com/Validium-Chain/validium-cli/internal/testutil"
)

func TestGenerate(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "docs")
	root := cmd.NewRootCommand(runtime.NewContext(testutil.NewTestLogger(), viper.New()))

	require.NoError(t, generate(root, outputDir))

	for _, page := range []string{
		"validium-cli.md",
		"validium-cli_create.md",
		"validium-cli_compile.md",
		"validium-cli_deploy.md",
		"validium-cli_interact.md",
		"validium-cli_version.md",
	} {
		assert.FileExists(t, filepath.Join(outputDir, page))
	}

	deployPage, err := os.ReadFile(filepath.Join(outputDir, "validium-cli_deploy.md"))
	require.NoError(t, err)
	assert.Contains(t, string(deployPage), "validium-cli deploy [script]")
	assert.Contains(t, string(deployPage), "--dry-run")
}
