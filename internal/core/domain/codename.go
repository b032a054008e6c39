package domain

import "strings"

// Codename is one product to set up in the larsoft mode, with its version and
// qualifiers resolved.
type Codename struct {
	Name       string
	Version    string
	Qualifiers string
}

// ParseCodename parses a codename entry of the form "name[@version[@quals]]",
// filling missing parts from the given defaults. Qualifiers are canonicalized.
func ParseCodename(entry, defaultVersion, defaultQuals string) Codename {
	parts := strings.SplitN(entry, "@", 3)
	c := Codename{
		Name:       parts[0],
		Version:    defaultVersion,
		Qualifiers: defaultQuals,
	}
	if len(parts) > 1 && parts[1] != "" {
		c.Version = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		c.Qualifiers = parts[2]
	}
	c.Qualifiers = SortQualifiers(c.Qualifiers, ":")
	return c
}
