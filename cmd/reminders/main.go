package main

import (
	"os"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
