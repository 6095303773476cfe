package main

import (
	"os"

	"github.com/timeline-dev/timeline/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
