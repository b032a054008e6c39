// Package main is the entry point for the larenv CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/cmd/larenv/commands"
	"go.larenv.dev/larenv/internal/app"
	"go.larenv.dev/larenv/internal/core/domain"
	_ "go.larenv.dev/larenv/internal/wiring"
	"go.trai.ch/zerr"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with stack trace and metadata under %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps an error to the process exit code: a failing external tool's
// code is propagated when known, everything else is 1.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrSetupFailed) || errors.Is(err, domain.ErrUnsupportedMode) {
		return 1
	}
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if code, ok := zErr.Metadata()["exit_code"].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
