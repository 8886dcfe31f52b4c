package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragments(t *testing.T) {
	t.Run("complete when all fragments set", func(t *testing.T) {
		f := Fragments{Challenge: "fc", System: "sysA", Algorithm: "algo1"}
		assert.True(t, f.Complete())
	})

	t.Run("incomplete when any fragment missing", func(t *testing.T) {
		assert.False(t, Fragments{System: "sysA", Algorithm: "algo1"}.Complete())
		assert.False(t, Fragments{Challenge: "fc", Algorithm: "algo1"}.Complete())
		assert.False(t, Fragments{Challenge: "fc", System: "sysA"}.Complete())
	})

	t.Run("trimmed strips surrounding whitespace", func(t *testing.T) {
		f := Fragments{Challenge: " fc ", System: "\tsysA", Algorithm: "algo1\n"}
		assert.Equal(t, Fragments{Challenge: "fc", System: "sysA", Algorithm: "algo1"}, f.Trimmed())
	})

	t.Run("whitespace-only fragments are incomplete after trimming", func(t *testing.T) {
		f := Fragments{Challenge: "  ", System: "sysA", Algorithm: "algo1"}
		assert.True(t, f.Complete(), "untrimmed blank looks complete")
		assert.False(t, f.Trimmed().Complete())
	})
}

func TestNotBlank(t *testing.T) {
	t.Run("rejects blank input", func(t *testing.T) {
		err := notBlank("challenge")("   ")
		assert.ErrorContains(t, err, "challenge must not be empty")
	})

	t.Run("accepts non-blank input", func(t *testing.T) {
		assert.NoError(t, notBlank("challenge")("fc"))
	})
}
