// Package main is the entry point for the primer CLI binary.
package main

import (
	"os"

	"primer/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
