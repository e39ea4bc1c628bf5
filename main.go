package main

import (
	"os"

	"github.com/NovaNexusIO/HelpMate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
