// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.larenv.dev/larenv/internal/adapters/config"
	_ "go.larenv.dev/larenv/internal/adapters/fs"
	_ "go.larenv.dev/larenv/internal/adapters/logger"
	_ "go.larenv.dev/larenv/internal/adapters/scancache"
	_ "go.larenv.dev/larenv/internal/adapters/telemetry"
	_ "go.larenv.dev/larenv/internal/adapters/ups"
	// Register app and engine nodes.
	_ "go.larenv.dev/larenv/internal/app"
	_ "go.larenv.dev/larenv/internal/engine/dispatch"
)
