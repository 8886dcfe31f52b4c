package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionCommand(t *testing.T) {
	t.Run("registered on the root command", func(t *testing.T) {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == "completion" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("help text names this tool", func(t *testing.T) {
		assert.Contains(t, completionCmd.Long, "dojo completion bash")
	})

	t.Run("accepts the four supported shells", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]string{"bash", "zsh", "fish", "powershell"},
			completionCmd.ValidArgs)
	})
}
