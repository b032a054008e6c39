package domain

import "strings"

// PathListSeparator is the separator used by all UPS search-path variables.
const PathListSeparator = ":"

// DedupePathList removes repeated directories from a colon-separated search
// path. The first occurrence of a directory wins; relative order of the
// survivors is unchanged.
func DedupePathList(list string) string {
	if list == "" {
		return ""
	}

	seen := make(map[string]bool)
	var out []string
	for _, dir := range strings.Split(list, PathListSeparator) {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		out = append(out, dir)
	}
	return strings.Join(out, PathListSeparator)
}

// PrependPathList inserts dir at the front of a colon-separated search path,
// dropping any existing occurrence of dir so the result keeps the uniqueness
// invariant.
func PrependPathList(list, dir string) string {
	if list == "" {
		return dir
	}
	return DedupePathList(dir + PathListSeparator + list)
}

// AppendPathList adds dir at the end of a colon-separated search path unless
// it is already present.
func AppendPathList(list, dir string) string {
	if list == "" {
		return dir
	}
	return DedupePathList(list + PathListSeparator + dir)
}
