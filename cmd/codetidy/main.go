// Package main is the entry point for the codetidy CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/codetidy/codetidy/internal/cli"
)

func main() {
	// Ctrl-C stops the run cooperatively: files already analyzed are
	// reported, the rest are listed as skipped.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
