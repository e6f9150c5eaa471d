// Package main is the entry point for the jx dependency manager.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/cmd/jx/commands"
	"go.trai.ch/jx/internal/app"
	"go.trai.ch/jx/internal/core/domain"
	_ "go.trai.ch/jx/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*commands.CLI)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components.App)
	for _, opt := range opts {
		opt(cli)
	}

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrVerificationFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
