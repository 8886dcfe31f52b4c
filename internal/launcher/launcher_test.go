package launcher

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on unix shell utilities")
	}

	t.Run("passes the params path as the last argument", func(t *testing.T) {
		var out bytes.Buffer
		l := New("echo", "submit")
		l.Stdout = &out

		err := l.Dispatch(context.Background(), "experiments/outputs/fc/sysA/fc_sysA_algo1_run1")
		require.NoError(t, err)
		assert.Equal(t, "submit experiments/outputs/fc/sysA/fc_sysA_algo1_run1\n", out.String())
	})

	t.Run("dry run prints the invocation without executing", func(t *testing.T) {
		var out bytes.Buffer
		l := New("definitely-not-a-real-command")
		l.DryRun = true
		l.Stdout = &out

		err := l.Dispatch(context.Background(), "experiments/outputs/fc/sysA/run1")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "dry-run: definitely-not-a-real-command experiments/outputs/fc/sysA/run1")
	})

	t.Run("missing submission command surfaces an error", func(t *testing.T) {
		l := New("definitely-not-a-real-command")
		l.Stdout = &bytes.Buffer{}
		l.Stderr = &bytes.Buffer{}

		err := l.Dispatch(context.Background(), "experiments/outputs/fc/sysA/run1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "submitting rerun job")
	})

	t.Run("non-zero exit surfaces an error", func(t *testing.T) {
		l := New("false")
		l.Stdout = &bytes.Buffer{}
		l.Stderr = &bytes.Buffer{}

		err := l.Dispatch(context.Background(), "experiments/outputs/fc/sysA/run1")
		assert.Error(t, err)
	})

	t.Run("cancelled context aborts the submission", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		l := New("sleep", "10")
		l.Stdout = &bytes.Buffer{}
		l.Stderr = &bytes.Buffer{}

		err := l.Dispatch(ctx, "experiments/outputs/fc/sysA/run1")
		assert.Error(t, err)
	})
}
