// Package main provides the CLI for ltsvq, a query tool for LTSV files.
package main

import (
	"os"

	"github.com/leapstack-labs/ltsvq/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
