package domain

import "strings"

// CoreProduct is the framework product set up first by the larsoft mode.
const CoreProduct = "larsoft"

// Experiment describes one experiment's bootstrap conventions.
type Experiment struct {
	// Bootstrap is the experiment's setup script, usually on CVMFS.
	Bootstrap string

	// Codenames are extra products the larsoft mode sets up after the core
	// framework.
	Codenames []string
}

// ExperimentConfig maps experiment names to their bootstrap conventions and
// carries the local-fallback repository layout used when no experiment script
// applies.
type ExperimentConfig struct {
	Experiments map[string]Experiment

	// LocalRepos are package repositories layered into PRODUCTS at lowest
	// priority by the local fallback bootstrap.
	LocalRepos []string

	// LocalOverrides are repositories layered at highest priority.
	LocalOverrides []string

	// UPSSetup is the UPS setup script sourced to reinitialize the package
	// manager after relayering.
	UPSSetup string
}

// Lookup returns the experiment entry for name, tolerating case differences.
func (c *ExperimentConfig) Lookup(name string) (Experiment, bool) {
	if exp, ok := c.Experiments[name]; ok {
		return exp, true
	}
	exp, ok := c.Experiments[strings.ToLower(name)]
	return exp, ok
}

// OldStyleBuildTool reports whether the given build tool version predates the
// v1 build-environment initialization command.
func OldStyleBuildTool(version string) bool {
	return strings.HasPrefix(version, "v0")
}
