package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Validium-Chain/validium-cli/internal/constants"
	"github.com/Validium-Chain/validium-cli/internal/settings"
	"github.com/Validium-Chain/validium-cli/internal/testutil"
)

func writeEnvFile(t *testing.T, dir string, envVars map[string]string) string {
	t.Helper()
	envFilePath := filepath.Join(dir, constants.DefaultEnvFileName)
	require.NoError(t, godotenv.Write(envVars, envFilePath))
	t.Cleanup(func() {
		for k := range envVars {
			os.Unsetenv(k)
		}
	})
	return envFilePath
}

func TestNew_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v := viper.New()
	s, err := settings.New(testutil.NewTestLogger(), v)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultTemplateRepoURL, s.TemplateRepoURL)
	assert.Equal(t, constants.DefaultDocsURL, s.DocsURL)
	assert.False(t, s.DryRun)
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VALIDIUM_TEMPLATE_REPO", "https://example.com/fork.git")
	t.Setenv("VALIDIUM_DOCS_URL", "https://docs.example.com")

	v := viper.New()
	s, err := settings.New(testutil.NewTestLogger(), v)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/fork.git", s.TemplateRepoURL)
	assert.Equal(t, "https://docs.example.com", s.DocsURL)
}

func TestNew_FlagValuesWin(t *testing.T) {
	t.Setenv("VALIDIUM_TEMPLATE_REPO", "https://example.com/from-env.git")

	v := viper.New()
	v.Set(settings.TemplateRepoSettingName, "https://example.com/from-flag.git")
	v.Set(settings.Flags.DryRun.Name, true)

	s, err := settings.New(testutil.NewTestLogger(), v)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/from-flag.git", s.TemplateRepoURL)
	assert.True(t, s.DryRun)
}

func TestNew_LoadsExplicitEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeEnvFile(t, dir, map[string]string{
		"VALIDIUM_SETTINGS_TEST_KEY": "from-file",
	})

	v := viper.New()
	v.Set(settings.Flags.CliEnvFile.Name, envFile)

	s, err := settings.New(testutil.NewTestLogger(), v)
	require.NoError(t, err)

	assert.Equal(t, envFile, s.EnvFile)
	assert.Equal(t, "from-file", os.Getenv("VALIDIUM_SETTINGS_TEST_KEY"))
}

func TestLoadEnv_DoesNotOverrideExportedVariables(t *testing.T) {
	t.Setenv("VALIDIUM_SETTINGS_EXPORTED", "exported")
	envFile := writeEnvFile(t, t.TempDir(), map[string]string{
		"VALIDIUM_SETTINGS_EXPORTED": "from-file",
	})

	loaded, err := settings.LoadEnv(envFile)
	require.NoError(t, err)

	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "exported", os.Getenv("VALIDIUM_SETTINGS_EXPORTED"))
}

func TestLoadEnv_FindsFileInParentDirectory(t *testing.T) {
	root := t.TempDir()
	envFile := writeEnvFile(t, root, map[string]string{
		"VALIDIUM_SETTINGS_PARENT": "parent",
	})
	nested := filepath.Join(root, "contracts", "nested")
	require.NoError(t, os.MkdirAll(nested, 0750))

	t.Chdir(nested)

	loaded, err := settings.LoadEnv("")
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(envFile)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(loaded)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, "parent", os.Getenv("VALIDIUM_SETTINGS_PARENT"))
}

func TestLoadEnv_MissingExplicitFileFallsBackToSearch(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := settings.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestNew_WarnsWhenExplicitEnvFileIsMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	missing := filepath.Join(t.TempDir(), "missing.env")

	log, logBuf := testutil.NewBufferedLogger()
	v := viper.New()
	v.Set(settings.Flags.CliEnvFile.Name, missing)

	s, err := settings.New(log, v)
	require.NoError(t, err)

	assert.Empty(t, s.EnvFile)
	assert.Contains(t, logBuf.String(), "[WARNING]:")
	assert.Contains(t, logBuf.String(), "Env file "+missing+" not found")
}

func TestNew_MissingDefaultEnvFileIsQuiet(t *testing.T) {
	t.Chdir(t.TempDir())

	log, logBuf := testutil.NewBufferedLogger()
	v := viper.New()
	v.Set(settings.Flags.CliEnvFile.Name, constants.DefaultEnvFileName)

	_, err := settings.New(log, v)
	require.NoError(t, err)

	assert.NotContains(t, logBuf.String(), "[WARNING]:")
}
