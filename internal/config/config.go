package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dynadojo/dojo-cli/internal/constants"
)

// ErrMissingEnv is returned when a required environment variable is unset.
var ErrMissingEnv = errors.New("required environment variable not set")

// Config holds the environment-derived settings for the CLI. It is built once
// at startup; nothing reads the environment after that.
type Config struct {
	// ScratchDir is the cluster scratch root ($DD_SCRATCH_DIR).
	ScratchDir string
	// OutputDir is the experiment output directory under the scratch root
	// ($DD_OUTPUT_DIR).
	OutputDir string
	// Launcher is the executable that submits the rerun job
	// ($DD_RERUN_LAUNCHER, falling back to the default scheduler client).
	Launcher string
}

// FromEnv builds a Config from the environment, failing fast with a
// descriptive error when a required variable is unset or blank.
func FromEnv() (*Config, error) {
	scratch := strings.TrimSpace(os.Getenv(constants.EnvScratchDir))
	output := strings.TrimSpace(os.Getenv(constants.EnvOutputDir))

	var missing []string
	if scratch == "" {
		missing = append(missing, constants.EnvScratchDir)
	}
	if output == "" {
		missing = append(missing, constants.EnvOutputDir)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (run the cluster setup script first)",
			ErrMissingEnv, strings.Join(missing, ", "))
	}

	launcher := strings.TrimSpace(os.Getenv(constants.EnvLauncher))
	if launcher == "" {
		launcher = constants.DefaultLauncher
	}

	return &Config{
		ScratchDir: scratch,
		OutputDir:  output,
		Launcher:   launcher,
	}, nil
}
