package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.larenv.dev/larenv/internal/core/domain"
)

func TestSortQualifiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "single", input: "e20", want: "e20"},
		{name: "sorted with build qualifier last", input: "e20:debug:c2", want: "c2:e20:debug"},
		{name: "build qualifiers keep relative order", input: "prof:a:opt", want: "a:prof:opt"},
		{name: "only build qualifiers", input: "debug:prof", want: "debug:prof"},
		{name: "duplicates preserved", input: "e20:e20:prof", want: "e20:e20:prof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SortQualifiers(tt.input, ":"))
		})
	}
}

func TestSortQualifiers_Idempotent(t *testing.T) {
	once := domain.SortQualifiers("e20:debug:c2:prof", ":")
	twice := domain.SortQualifiers(once, ":")
	assert.Equal(t, once, twice)
}

func TestSortQualifiers_CustomDelimiter(t *testing.T) {
	assert.Equal(t, "c2_e20_debug", domain.SortQualifiers("e20_debug_c2", "_"))
}

func TestQualifiersDirSuffix(t *testing.T) {
	assert.Equal(t, "c2_e20_debug", domain.QualifiersDirSuffix("e20:debug:c2"))
	assert.Equal(t, "", domain.QualifiersDirSuffix(""))
}
