package cypher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"n", true},
		{"_private1", true},
		{"Example", true},
		{"1abc", false},
		{"my node", false},
		{"a`b", false},
		{"ünicode", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsIdentifier(tt.input), "IsIdentifier(%q)", tt.input)
	}
}
