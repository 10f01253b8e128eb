package main

import (
	"log/slog"
	"os"

	"github.com/ksysoev/gait/pkg/cmd"
	"github.com/ksysoev/gait/pkg/logging"
)

// main is the entry point for the gait CLI binary.
func main() {
	logger := logging.New(os.Stderr, slog.LevelInfo)
	if err := cmd.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
