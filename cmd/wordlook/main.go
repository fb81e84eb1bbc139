// Package main provides the entry point for the wordlook CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/wordlook/cmd/wordlook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
