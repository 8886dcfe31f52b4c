package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynadojo/dojo-cli/internal/constants"
)

func setListFlags(t *testing.T, challenge, system, algorithm string) {
	t.Helper()
	oldChallenge, oldSystem, oldAlgorithm := listChallenge, listSystem, listAlgorithm
	t.Cleanup(func() {
		listChallenge, listSystem, listAlgorithm = oldChallenge, oldSystem, oldAlgorithm
	})
	listChallenge, listSystem, listAlgorithm = challenge, system, algorithm
}

func TestRunList(t *testing.T) {
	t.Run("rejects blank fragments", func(t *testing.T) {
		t.Setenv(constants.EnvScratchDir, t.TempDir())
		t.Setenv(constants.EnvOutputDir, "out")
		setListFlags(t, "   ", "sysA", "algo1")

		err := runList(listCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be blank")
	})

	t.Run("trims whitespace from flag values", func(t *testing.T) {
		scratch := t.TempDir()
		t.Setenv(constants.EnvScratchDir, scratch)
		t.Setenv(constants.EnvOutputDir, "out")
		require.NoError(t, os.MkdirAll(
			filepath.Join(scratch, "out", "fc", "sysA", "fc_sysA_algo1_run1"), 0755))
		setListFlags(t, " fc ", "sysA", " algo1")

		assert.NoError(t, runList(listCmd, nil))
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		t.Setenv(constants.EnvScratchDir, t.TempDir())
		t.Setenv(constants.EnvOutputDir, "out")
		setListFlags(t, "fc", "sysA", "algo1")

		assert.NoError(t, runList(listCmd, nil))
	})
}
