package main

import (
	"os"

	"ecsign/cmd/ecsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
