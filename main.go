package main

import (
	"os"

	"github.com/roeland/learntrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
