package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownChallenge(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "fixed complexity",
			input:    "fc",
			expected: true,
		},
		{
			name:     "fixed train set",
			input:    "fts",
			expected: true,
		},
		{
			name:     "fixed error",
			input:    "fe",
			expected: true,
		},
		{
			name:     "unknown challenge",
			input:    "fx",
			expected: false,
		},
		{
			name:     "case sensitive",
			input:    "FC",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKnownChallenge(tt.input))
		})
	}
}

func TestChallengeHint(t *testing.T) {
	t.Run("lists every known challenge", func(t *testing.T) {
		hint := ChallengeHint()
		for _, c := range Challenges {
			assert.Contains(t, hint, c)
		}
	})
}
