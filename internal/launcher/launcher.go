// Package launcher dispatches the cluster rerun job. The job is an opaque
// external collaborator: it receives the container-relative params file path
// as its single argument and is responsible for making it executable. No
// output is parsed and nothing is retried.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dynadojo/dojo-cli/internal/logger"
)

// Launcher invokes the external job submission command.
type Launcher struct {
	// Command is the submission executable, e.g. the scheduler client.
	Command string
	// Args are fixed arguments placed before the params file path.
	Args []string
	// DryRun prints the invocation instead of running it.
	DryRun bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Launcher for the given submission command.
func New(command string, args ...string) *Launcher {
	return &Launcher{Command: command, Args: args}
}

// Dispatch submits the rerun job for the given params file path. Fire and
// forget: a non-zero exit from the submission command is the only failure
// signal, and the job's own outcome is never observed here.
func (l *Launcher) Dispatch(ctx context.Context, paramsPath string) error {
	argv := make([]string, 0, len(l.Args)+1)
	argv = append(argv, l.Args...)
	argv = append(argv, paramsPath)

	if l.DryRun {
		fmt.Fprintf(l.stdout(), "dry-run: %s %s\n", l.Command, strings.Join(argv, " "))
		return nil
	}

	logger.Debug("Dispatching rerun job: %s %s", l.Command, strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, l.Command, argv...)
	cmd.Stdout = l.stdout()
	cmd.Stderr = l.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("submitting rerun job with %s: %w", l.Command, err)
	}
	return nil
}

func (l *Launcher) stdout() io.Writer {
	if l.Stdout != nil {
		return l.Stdout
	}
	return os.Stdout
}

func (l *Launcher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}
