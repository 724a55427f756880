package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jask/cafferot/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		ui.Bad.Fprintf(os.Stderr, "cafferot: %v\n", err)
		stop()
		os.Exit(1)
	}
}
