package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Interrupt or SIGTERM cancels the command context so batch and
	// watch runs can finish the document in flight and exit cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
