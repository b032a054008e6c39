// Package app implements the application layer for larenv.
package app

import (
	"context"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports"
	"go.larenv.dev/larenv/internal/engine/dispatch"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	scanner    ports.Scanner
	toolchain  ports.Toolchain
	dispatcher *dispatch.Dispatcher
	logger     ports.Logger
	telemetry  ports.Telemetry
}

// New creates a new App instance.
func New(
	scanner ports.Scanner,
	toolchain ports.Toolchain,
	dispatcher *dispatch.Dispatcher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		scanner:    scanner,
		toolchain:  toolchain,
		dispatcher: dispatcher,
		logger:     logger,
		telemetry:  telemetry,
	}
}

// Setup dispatches one environment-configuration mode.
func (a *App) Setup(ctx context.Context, req *dispatch.Request) (dispatch.Result, error) {
	res, err := a.dispatcher.Dispatch(ctx, req)
	if err != nil {
		return res, err
	}
	if res.Failures > 0 {
		return res, zerr.With(domain.ErrSetupFailed, "failures", res.Failures)
	}
	return res, nil
}
