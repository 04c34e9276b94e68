package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jamhacks/jamsched/internal/cli"
	"github.com/jamhacks/jamsched/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		// Use stderr directly since the logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		logger.Get().Error(ctx, "run failed", logger.Error(err))
		os.Exit(1)
	}
}
