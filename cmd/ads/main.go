package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"astro-schedule/internal/cli"
)

func main() {
	// Cancel the menu on Ctrl-C or SIGTERM; per-operation timeouts come from config
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.DefaultRootCommand().Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
