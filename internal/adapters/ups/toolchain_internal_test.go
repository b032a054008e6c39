package ups

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvDump(t *testing.T) {
	dump := []byte("A=1\x00B=x=y\x00garbage\x00")
	env := parseEnvDump(dump)

	assert.Equal(t, "1", env.Get("A"))
	assert.Equal(t, "x=y", env.Get("B"))
	assert.False(t, env.Has("garbage"))
}

func TestShellWord(t *testing.T) {
	assert.Equal(t, "'plain'", shellWord("plain"))
	assert.Equal(t, `'it'\''s'`, shellWord("it's"))
	assert.Equal(t, "''", shellWord(""))
}
