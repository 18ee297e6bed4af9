// Package commands builds the shell command lines the CLI hands to the runner.
//
// Arguments are substituted verbatim. Nothing is quoted or escaped, so a project or script
// name containing shell metacharacters is interpreted by the shell.
package commands

import (
	"fmt"

	"github.com/Validium-Chain/validium-cli/internal/constants"
)

const (
	gitCloneTemplate   = "git clone --depth 1 %s %s"
	npmInstallTemplate = "cd %s && npm install"
	compileCommand     = "npx hardhat compile"
	deployTemplate     = "npx hardhat deploy-zksync --script %s"
)

// Clone shallow-clones the template repository into dir.
func Clone(repoURL, dir string) string {
	return fmt.Sprintf(gitCloneTemplate, repoURL, dir)
}

// Install installs the npm dependencies of the project in dir.
func Install(dir string) string {
	return fmt.Sprintf(npmInstallTemplate, dir)
}

func Compile() string {
	return compileCommand
}

// Deploy runs a deployment script through the zkSync hardhat deploy task.
func Deploy(script string) string {
	return fmt.Sprintf(deployTemplate, script)
}

// Interact runs an interaction script. The deploy task is a generic script runner, so the
// command line has the same shape as Deploy.
func Interact(script string) string {
	return fmt.Sprintf(deployTemplate, script)
}

// NextSteps is the walkthrough printed once a project has been created.
func NextSteps(projectName string) []string {
	cli := "npx " + constants.Package.Name
	return []string{
		"Follow these steps:",
		fmt.Sprintf("1. cd %s", projectName),
		"2. Create .env file at root and add -",
		"    " + constants.WalletPrivateKeyEnvVar + "=",
		"    " + constants.InfuraAPIKeyEnvVar + "=",
		fmt.Sprintf("3. %s %s", cli, constants.Commands.Compile),
		fmt.Sprintf("4. Inside %s add -", constants.DefaultDeployScript),
		"    contractArtifactName",
		"    constructorArguments",
		fmt.Sprintf("5. %s %s <script-name>", cli, constants.Commands.Deploy),
		fmt.Sprintf("6. Copy contract address from deployment logs and add it to the %s -", constants.DefaultInteractScript),
		"    CONTRACT_ADDRESS",
		"    CONTRACT_NAME",
		fmt.Sprintf("7. %s %s <script-name>", cli, constants.Commands.Interact),
	}
}
