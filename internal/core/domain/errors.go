package domain

import "go.trai.ch/zerr"

var (
	// ErrNoWorkArea is returned when the MRB work-area environment is missing
	// or incomplete. This is fatal; nothing can proceed without a work area.
	ErrNoWorkArea = zerr.New("no MRB work area configured")

	// ErrNoSourceDir is returned when the work area has no source directory.
	ErrNoSourceDir = zerr.New("no source directory in work area")

	// ErrNoVersion is returned when reconciliation ends with no candidate
	// version and none was supplied explicitly.
	ErrNoVersion = zerr.New("no version determined")

	// ErrInconsistentVersions is returned when two mandatory packages declare
	// different parent versions and the override flag is not set.
	ErrInconsistentVersions = zerr.New("inconsistent parent versions in source tree")

	// ErrUnsupportedMode is returned for an unrecognized setup mode keyword.
	ErrUnsupportedMode = zerr.New("unsupported setup mode")

	// ErrSetupFailed is returned when a delegated toolchain invocation fails.
	ErrSetupFailed = zerr.New("toolchain setup failed")

	// ErrNoSetupScript is returned when no local-products setup script could
	// be located by the documented fallback order.
	ErrNoSetupScript = zerr.New("no local products setup script found")
)
