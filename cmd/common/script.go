package common

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Validium-Chain/validium-cli/internal/constants"
)

// ScriptInputs are the inputs of the commands that hand a script to hardhat.
type ScriptInputs struct {
	Script string `validate:"required" cli:"script"`
}

// ResolveScript returns the optional positional argument, or fallback when it was omitted.
// The value is passed on verbatim.
func ResolveScript(args []string, fallback string) ScriptInputs {
	if len(args) > 0 && args[0] != "" {
		return ScriptInputs{Script: args[0]}
	}
	return ScriptInputs{Script: fallback}
}

// WarnMissingWallet warns when the signer key the template's hardhat config reads is not set.
// envFile is the .env file that was loaded, if any. The run still goes ahead since hardhat may
// find the key elsewhere.
func WarnMissingWallet(log *zerolog.Logger, envFile string) {
	if strings.TrimSpace(os.Getenv(constants.WalletPrivateKeyEnvVar)) != "" {
		return
	}
	if envFile == "" {
		log.Warn().Msgf("%s is not set and no %s file was found. Add it to the %s file of your project before deploying.",
			constants.WalletPrivateKeyEnvVar, constants.DefaultEnvFileName, constants.DefaultEnvFileName)
		return
	}
	log.Warn().Msgf("%s is not set. Add it to %s before deploying.",
		constants.WalletPrivateKeyEnvVar, envFile)
}
