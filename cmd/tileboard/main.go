package main

import (
	"os"

	"tileboard/cmd/tileboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
