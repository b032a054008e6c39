package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.larenv.dev/larenv/internal/core/domain"
)

func TestDedupePathList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "no duplicates", input: "/a:/b", want: "/a:/b"},
		{name: "first occurrence wins", input: "/a:/b:/a:/c", want: "/a:/b:/c"},
		{name: "all duplicates", input: "/a:/a:/a", want: "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DedupePathList(tt.input))
		})
	}
}

func TestPrependPathList(t *testing.T) {
	assert.Equal(t, "/new:/a:/b", domain.PrependPathList("/a:/b", "/new"))
	assert.Equal(t, "/a", domain.PrependPathList("", "/a"))

	// Prepending an existing dir moves it to the front.
	assert.Equal(t, "/b:/a", domain.PrependPathList("/a:/b", "/b"))
}

func TestAppendPathList(t *testing.T) {
	assert.Equal(t, "/a:/b:/new", domain.AppendPathList("/a:/b", "/new"))
	assert.Equal(t, "/a", domain.AppendPathList("", "/a"))

	// Appending an existing dir leaves the list unchanged.
	assert.Equal(t, "/a:/b", domain.AppendPathList("/a:/b", "/a"))
}
