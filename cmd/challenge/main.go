package main

import (
	"os"

	"github.com/imkonsowa/restaurants-challenges/cmd/challenge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
