package main

import (
	"os"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra already prints; just exit non-zero
		os.Exit(1)
	}
}
