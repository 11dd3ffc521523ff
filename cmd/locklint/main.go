// Package main provides the locklint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/locklint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
