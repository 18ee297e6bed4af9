package main

import "github.com/Validium-Chain/validium-cli/cmd"

func main() {
	cmd.Execute()
}
