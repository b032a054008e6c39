package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// ReconcileOptions controls version reconciliation over a source tree.
type ReconcileOptions struct {
	// IgnoreInconsistency allows mandatory packages to disagree; the
	// last-seen declared version wins.
	IgnoreInconsistency bool
}

// Decision is the outcome of reconciling the parent versions declared across
// a work area's packages.
type Decision struct {
	// Version is the single resolved parent version.
	Version string

	// Diagnostics holds human-readable warnings accumulated during the scan.
	// A non-empty list does not imply failure.
	Diagnostics []string
}

// Reconcile infers a single consistent parent version from the given package
// dependency records.
//
// Records are walked in package-name order. The original shell tooling walked
// packages in directory-listing order, which is filesystem dependent; sorting
// makes the outcome reproducible.
//
// A disagreement with the running candidate is handled as follows: if a
// mandatory package has already been accepted, a disagreeing mandatory
// package aborts reconciliation with ErrInconsistentVersions (unless
// IgnoreInconsistency is set, in which case its version overwrites the
// candidate), while a disagreeing optional package only warns and leaves the
// candidate in place. Before any mandatory package has been accepted the
// newest value simply overwrites the candidate.
func Reconcile(records []ProductDeps, opts ReconcileOptions) (Decision, error) {
	sorted := make([]ProductDeps, len(records))
	copy(sorted, records)
	slices.SortFunc(sorted, func(a, b ProductDeps) int {
		switch {
		case a.Package < b.Package:
			return -1
		case a.Package > b.Package:
			return 1
		default:
			return 0
		}
	})

	var d Decision
	hasMandatory := false

	for _, rec := range sorted {
		if rec.ParentVersion == "" {
			d.Diagnostics = append(d.Diagnostics,
				fmt.Sprintf("package %s declares no parent version, skipped", rec.Package))
			continue
		}

		if d.Version == "" {
			d.Version = rec.ParentVersion
			hasMandatory = hasMandatory || rec.Mandatory()
			continue
		}

		if rec.ParentVersion == d.Version {
			hasMandatory = hasMandatory || rec.Mandatory()
			continue
		}

		d.Diagnostics = append(d.Diagnostics,
			fmt.Sprintf("package %s declares parent version %s, conflicting with %s",
				rec.Package, rec.ParentVersion, d.Version))

		switch {
		case hasMandatory && rec.Mandatory():
			if !opts.IgnoreInconsistency {
				err := zerr.With(ErrInconsistentVersions, "package", rec.Package)
				err = zerr.With(err, "declared_version", rec.ParentVersion)
				err = zerr.With(err, "candidate_version", d.Version)
				return Decision{Diagnostics: d.Diagnostics}, err
			}
			d.Version = rec.ParentVersion
		case hasMandatory:
			// An optional package cannot override the mandatory consensus.
		default:
			d.Version = rec.ParentVersion
			hasMandatory = rec.Mandatory()
		}
	}

	if d.Version == "" {
		return d, ErrNoVersion
	}
	return d, nil
}
