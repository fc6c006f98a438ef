// Package main is the entry point for fg.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/framegraph/cmd/fg/commands"
	"go.trai.ch/framegraph/internal/adapters/telemetry"
	"go.trai.ch/framegraph/internal/app"
	_ "go.trai.ch/framegraph/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// No logger yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// Spans surface as debug logs, visible with --verbose.
	shutdown := telemetry.Setup(telemetry.NewLogBridge(components.Logger))
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
		if components.Telemetry != nil {
			_ = components.Telemetry.Close()
		}
	}()

	components.App.WithOutput(stdout)

	settings, _ := components.Logger.(commands.LogSettings)
	cli := commands.New(components.App, settings)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
