// Package main provides the entry point for the ufccards CLI.
package main

import (
	"errors"
	"os"

	"github.com/ufccards/ufccards/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// SilenceErrors suppresses Cobra output
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cmd.ExitCodeFailure)
	}
}
