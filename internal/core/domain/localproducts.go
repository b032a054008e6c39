package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// LocalProductsLink is the name of the symbolic link that always points at the
// most recently created local-products directory.
const LocalProductsLink = "localProducts"

// LocalProducts identifies a local-products directory by project, version,
// and canonical qualifiers.
type LocalProducts struct {
	Project    string
	Version    string
	Qualifiers string
}

// DirName returns the conventional directory name,
// localProducts_<project>_<version>_<qualifiers with underscores>.
func (lp LocalProducts) DirName() string {
	name := fmt.Sprintf("localProducts_%s_%s", lp.Project, lp.Version)
	if suffix := QualifiersDirSuffix(lp.Qualifiers); suffix != "" {
		name += "_" + suffix
	}
	return name
}

// ScriptPath resolves the local-products setup script under root, following
// the fallback search order: the exact directory for this triple, then
// localProd/setup, then localProducts/setup, then the lexicographically last
// localProducts_<project>_* directory. Returns "" when nothing matches.
func (lp LocalProducts) ScriptPath(root string) string {
	exact := filepath.Join(root, lp.DirName(), "setup")
	if fileReadable(exact) {
		return exact
	}

	for _, dir := range []string{"localProd", LocalProductsLink} {
		p := filepath.Join(root, dir, "setup")
		if fileReadable(p) {
			return p
		}
	}

	pattern := filepath.Join(root, fmt.Sprintf("localProducts_%s_*", lp.Project))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return ""
	}
	slices.Sort(matches)
	p := filepath.Join(matches[len(matches)-1], "setup")
	if fileReadable(p) {
		return p
	}
	return ""
}

func fileReadable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
