package main

import (
	"os"

	"prompt-gallery/cmd"

	"go.uber.org/zap"
)

func main() {
	defer zap.S().Sync()

	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
