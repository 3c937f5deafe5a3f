// Package main is the entry point for the bob service.
package main

import (
	"os"

	"github.com/caroogle/bob/cmd/bob/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
