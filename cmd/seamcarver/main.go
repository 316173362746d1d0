package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/esimov/seamcarver/internal/cli"
)

// Version is set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(Version, Commit, Date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
