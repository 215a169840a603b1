package main

import (
	"os"

	"github.com/Kiruse/kayring/cmd/kayring/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
