package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyles(t *testing.T) {
	t.Run("title style preserves the text", func(t *testing.T) {
		assert.Contains(t, TitleStyle.Render("Params files"), "Params files")
	})

	t.Run("info style preserves the text", func(t *testing.T) {
		assert.Contains(t, InfoStyle.Render("Searching /scratch/out/fc/sysA"), "Searching /scratch/out/fc/sysA")
	})
}

func TestChallengeBadge(t *testing.T) {
	t.Run("known challenges render as badges", func(t *testing.T) {
		for _, c := range []string{"fc", "fts", "fe"} {
			assert.Contains(t, ChallengeBadge(c), c)
		}
	})

	t.Run("unknown challenge falls back to plain text", func(t *testing.T) {
		assert.Equal(t, "custom", ChallengeBadge("custom"))
	})
}
