package main

import (
	"os"

	"socialcosmos/cmd/socialcosmos/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
