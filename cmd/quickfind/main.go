// Package main provides the entry point for the quickfind CLI.
package main

import (
	"os"

	"github.com/notedeck/quickfind/cmd/quickfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
