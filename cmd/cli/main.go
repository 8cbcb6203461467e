// Package main is the entry point for the interest-calc CLI.
package main

import (
	"os"

	"interest-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
