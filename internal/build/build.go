// Package build holds build-time metadata injected via ldflags.
package build

// Version is the application version, overridden at build time with
// -ldflags "-X go.larenv.dev/larenv/internal/build.Version=vX.Y.Z".
var Version = "dev"
