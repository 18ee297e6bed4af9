package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Validium-Chain/validium-cli/internal/constants"
)

const loadEnvErrorMessage = "Not able to load configuration from .env file, skipping this optional step.\n" +
	"Hardhat scripts read " + constants.WalletPrivateKeyEnvVar + " and " + constants.InfuraAPIKeyEnvVar + " from the environment, so they MUST be exported.\n" +
	"If .env location is not provided via CLI flag, the nearest .env file in the current directory or its parents is used."

// Settings is the resolved configuration of a single CLI invocation.
type Settings struct {
	// EnvFile is the .env file that was loaded, empty when none was found.
	EnvFile         string
	TemplateRepoURL string
	DocsURL         string
	DryRun          bool
}

// New loads the .env file into the process environment (children inherit it) and resolves
// settings from flags, VALIDIUM_* variables and defaults, in that order.
func New(logger *zerolog.Logger, v *viper.Viper) (*Settings, error) {
	envPath := v.GetString(Flags.CliEnvFile.Name)
	if envPath != "" && envPath != constants.DefaultEnvFileName {
		if _, statErr := os.Stat(envPath); statErr != nil {
			logger.Warn().Msgf("Env file %s not found, using the nearest %s file instead", envPath, constants.DefaultEnvFileName)
		}
	}

	loaded, err := LoadEnv(envPath)
	if err != nil {
		// .env file is optional, so we log it as a debug message
		logger.Debug().Err(err).Msg(loadEnvErrorMessage)
	} else {
		logger.Debug().Msgf("Loaded environment from %s", loaded)
	}

	if err := BindEnv(v); err != nil {
		return nil, err
	}

	s := &Settings{
		EnvFile:         loaded,
		TemplateRepoURL: strings.TrimSpace(v.GetString(TemplateRepoSettingName)),
		DocsURL:         strings.TrimSpace(v.GetString(DocsURLSettingName)),
		DryRun:          v.GetBool(Flags.DryRun.Name),
	}
	if s.TemplateRepoURL == "" {
		s.TemplateRepoURL = constants.DefaultTemplateRepoURL
	}
	if s.DocsURL == "" {
		s.DocsURL = constants.DefaultDocsURL
	}

	logger.Debug().Msgf("Template repository: %s", s.TemplateRepoURL)
	return s, nil
}

// BindEnv maps config names onto VALIDIUM_* variables, e.g. template-repo -> VALIDIUM_TEMPLATE_REPO.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, name := range []string{TemplateRepoSettingName, DocsURLSettingName} {
		if err := v.BindEnv(name); err != nil {
			return fmt.Errorf("failed to bind environment variable for %s: %w", name, err)
		}
	}

	v.AutomaticEnv()
	return nil
}

// LoadEnv loads envPath if it exists, otherwise the nearest default .env file found walking
// up from the working directory. Variables already set in the environment win.
func LoadEnv(envPath string) (string, error) {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading file from %s: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error getting working directory: %w", err)
	}

	foundEnvPath, err := findEnvFile(cwd, constants.DefaultEnvFileName)
	if err != nil {
		return "", fmt.Errorf("error loading environment: %w", err)
	}

	if err := godotenv.Load(foundEnvPath); err != nil {
		return "", fmt.Errorf("error loading file from %s: %w", foundEnvPath, err)
	}
	return foundEnvPath, nil
}

func findEnvFile(startDir, fileName string) (string, error) {
	dir := startDir

	for {
		filePath := filepath.Join(dir, fileName)

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return filePath, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break
		}
		dir = parentDir
	}
	return "", fmt.Errorf("file %s not found in any parent directory starting from %s", fileName, startDir)
}
