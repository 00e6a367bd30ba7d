// Package main is the entry point for the multipole CLI.
package main

import (
	"os"

	"github.com/rmera/gomultipole/cmd/multipole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
