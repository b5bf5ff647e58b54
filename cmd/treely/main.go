package main

import (
	"os"

	"github.com/viant/treely/cmd/treely/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
