package main

import (
	"os"

	"github.com/dmoretti/wordflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
