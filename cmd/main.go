package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/kle2kmk/cmd/kle2kmk"
	"github.com/dasdy/kle2kmk/logging"
)

func main() {
	// Replaced with a debug logger by --verbose.
	slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelInfo))

	kle2kmk.Execute()
}
