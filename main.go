// main is the entry point for the typomatch CLI.
package main

import (
	"github.com/huangsam/typomatch/cmd"
	"github.com/huangsam/typomatch/internal/contract"
)

func main() {
	err := cmd.Execute()
	if shutdownErr := cmd.Shutdown(); shutdownErr != nil {
		contract.LogWarn("Shutdown did not complete cleanly", shutdownErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
