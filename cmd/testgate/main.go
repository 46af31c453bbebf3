// Package main is the entry point for the testgate CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/testgate/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
