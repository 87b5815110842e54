// Package main provides the sqlecto command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlecto/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
