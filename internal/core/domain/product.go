package domain

import "strings"

// mandatoryPrefixes designate the core-framework package families whose
// declared parent versions must agree across a work area.
var mandatoryPrefixes = []string{"lar", "nu"}

// ProductDeps is a package dependency record read from a package's
// ups/product_deps file. Records are parsed fresh on every reconciliation run
// and never persisted by this tool.
type ProductDeps struct {
	// Package is the package directory name (e.g., "larcore").
	Package string

	// ParentVersion is the declared parent framework version, taken from the
	// third field of the first "parent" line of the product_deps file.
	ParentVersion string
}

// Mandatory reports whether the package belongs to a core-framework family.
func (p ProductDeps) Mandatory() bool {
	for _, prefix := range mandatoryPrefixes {
		if strings.HasPrefix(p.Package, prefix) {
			return true
		}
	}
	return false
}
