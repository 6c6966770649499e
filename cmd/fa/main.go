package main

import (
	"os"

	"github.com/kpaz/focus-assistant-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
