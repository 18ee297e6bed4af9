package constants

import (
	"time"
)

const (
	// Default Values
	DefaultProjectName     = "validium-project"
	DefaultDeployScript    = "deploy.ts"
	DefaultInteractScript  = "interact.ts"
	DefaultEnvFileName     = ".env"
	DefaultTemplateRepoURL = "https://github.com/Validium-Chain/Deploy-on-Validium"
	DefaultDocsURL         = "https://validium.gitbook.io/docs/start-coding/quickstart/deploy-using-quickstart-repository"

	// Environment read by the hardhat scripts of the template project
	WalletPrivateKeyEnvVar = "WALLET_PRIVATE_KEY"
	InfuraAPIKeyEnvVar     = "INFURA_API_KEY"

	// Prefix for every environment variable the CLI itself reads
	EnvPrefix = "VALIDIUM"

	// Update check
	ReleasesAPIURL       = "https://api.github.com/repos/Validium-Chain/validium-cli/releases/latest"
	ReleasesURL          = "https://github.com/Validium-Chain/validium-cli/releases"
	UpdateCheckInterval  = 12 * time.Hour
	UpdateCheckTimeout   = 2 * time.Second
	UpdateNoticeGrace    = 300 * time.Millisecond
	UpdateCacheDirName   = ".validium"
	UpdateCacheFileName  = "update.json"
	DevelopmentVersion   = "development"
	ForceUpdateCheckEnv  = "VALIDIUM_FORCE_UPDATE_CHECK"
	NoUpdateCheckEnvVar  = "VALIDIUM_NO_UPDATE_CHECK"
	UpdateUserAgentValue = "validium-cli-update-check"
)

type packageInfo struct {
	Name        string
	Description string
}

type commandNames struct {
	Create   string
	Compile  string
	Deploy   string
	Interact string
	Version  string
}

type processCodes struct {
	Success int
	Failure int
}

var Package = packageInfo{
	Name:        "validium-cli",
	Description: "A CLI tool for Validium network management",
}

var Commands = commandNames{
	Create:   "create",
	Compile:  "compile",
	Deploy:   "deploy",
	Interact: "interact",
	Version:  "version",
}

var ProcessCode = processCodes{
	Success: 0,
	Failure: 1,
}
