package domain

import (
	"slices"
	"strings"
)

// buildQualifiers are the build-mode tokens that always sort to the end of a
// canonical qualifier string, keeping their relative input order.
var buildQualifiers = []string{"prof", "opt", "debug"}

// SortQualifiers returns the canonical serialization of a qualifier set.
//
// Tokens are split on delim, sorted lexicographically, and rejoined with the
// same delim, except that the build-mode qualifiers (prof, opt, debug) are
// moved to the tail in their original relative order. An empty input yields an
// empty string. Repeated tokens are preserved; UPS accepts them and the
// original tooling never deduplicated, so neither do we.
func SortQualifiers(quals, delim string) string {
	if quals == "" {
		return ""
	}

	var regular, build []string
	for _, tok := range strings.Split(quals, delim) {
		if slices.Contains(buildQualifiers, tok) {
			build = append(build, tok)
		} else {
			regular = append(regular, tok)
		}
	}
	slices.Sort(regular)

	return strings.Join(append(regular, build...), delim)
}

// QualifiersDirSuffix returns the directory-name form of a qualifier string:
// canonical order with colons replaced by underscores, as used in
// localProducts directory names.
func QualifiersDirSuffix(quals string) string {
	return strings.ReplaceAll(SortQualifiers(quals, ":"), ":", "_")
}
