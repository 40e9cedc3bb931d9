package main

import (
	"os"

	"peerdid/cmd/peerdid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
