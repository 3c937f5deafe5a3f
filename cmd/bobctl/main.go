// Package main is the entry point for the bobctl CLI client.
package main

import (
	"github.com/caroogle/bob/cmd/bobctl/cmd"
)

func main() {
	cmd.Execute()
}
