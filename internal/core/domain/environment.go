package domain

import (
	"fmt"
	"strings"
)

// Environment is an explicit model of a shell environment. Mode handlers
// mutate an Environment value; the CLI applies the result at the process
// boundary by printing export statements for the caller's shell to eval.
// Insertion order is preserved so output is deterministic.
type Environment struct {
	keys   []string
	values map[string]string
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// EnvironmentFromEnviron builds an Environment from "KEY=VALUE" entries as
// returned by os.Environ. Malformed entries are skipped.
func EnvironmentFromEnviron(environ []string) *Environment {
	env := NewEnvironment()
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env.Set(k, v)
		}
	}
	return env
}

// Get returns the value for key, or "" when unset.
func (e *Environment) Get(key string) string {
	return e.values[key]
}

// Has reports whether key is set, distinguishing unset from empty.
func (e *Environment) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Set assigns value to key.
func (e *Environment) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Unset removes key.
func (e *Environment) Unset(key string) {
	if _, ok := e.values[key]; !ok {
		return
	}
	delete(e.values, key)
	for i, k := range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)
			break
		}
	}
}

// PrependPath puts dir at the highest-priority position of the path-list
// variable key, preserving the no-duplicates invariant.
func (e *Environment) PrependPath(key, dir string) {
	e.Set(key, PrependPathList(e.Get(key), dir))
}

// AppendPath puts dir at the lowest-priority position of the path-list
// variable key unless already present.
func (e *Environment) AppendPath(key, dir string) {
	e.Set(key, AppendPathList(e.Get(key), dir))
}

// DedupePath removes repeated directories from the path-list variable key,
// first occurrence winning.
func (e *Environment) DedupePath(key string) {
	if e.Has(key) {
		e.Set(key, DedupePathList(e.Get(key)))
	}
}

// Environ returns the environment as "KEY=VALUE" entries in insertion order,
// suitable for exec.Cmd.Env.
func (e *Environment) Environ() []string {
	out := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, k+"="+e.values[k])
	}
	return out
}

// Clone returns an independent copy.
func (e *Environment) Clone() *Environment {
	c := NewEnvironment()
	for _, k := range e.keys {
		c.Set(k, e.values[k])
	}
	return c
}

// ExportOp is a single shell statement applying one environment change.
type ExportOp struct {
	Key   string
	Value string
	Unset bool
}

// String renders the op as a POSIX shell statement.
func (op ExportOp) String() string {
	if op.Unset {
		return fmt.Sprintf("unset %s;", op.Key)
	}
	return fmt.Sprintf("export %s=%s;", op.Key, shellQuote(op.Value))
}

// Diff computes the shell statements that transform base into e. Keys are
// emitted in e's insertion order; keys present in base but absent from e are
// emitted as unsets afterwards.
func (e *Environment) Diff(base *Environment) []ExportOp {
	var ops []ExportOp
	for _, k := range e.keys {
		if !base.Has(k) || base.Get(k) != e.values[k] {
			ops = append(ops, ExportOp{Key: k, Value: e.values[k]})
		}
	}
	for _, k := range base.keys {
		if !e.Has(k) {
			ops = append(ops, ExportOp{Key: k, Unset: true})
		}
	}
	return ops
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
