package main

import (
	"os"

	"github.com/sealbox/sealbox-go/cmd/sealbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
