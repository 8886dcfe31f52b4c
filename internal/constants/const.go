package constants

import "strings"

// Environment variables populated by the cluster setup scripts before the CLI runs.
const (
	EnvScratchDir = "DD_SCRATCH_DIR"
	EnvOutputDir  = "DD_OUTPUT_DIR"
	EnvLauncher   = "DD_RERUN_LAUNCHER"
)

// DisplayRoot replaces the scratch/output prefix when params file paths are
// shown to the user and handed to the rerun job. The rerun job resolves it
// inside the experiment container, so it always uses forward slashes.
var DisplayRoot = "experiments/outputs"

// DefaultLauncher is the executable used to submit the rerun job when neither
// the --launcher flag nor DD_RERUN_LAUNCHER overrides it.
var DefaultLauncher = "sbatch"

// Challenges lists the challenge kinds produced by the experiment harness:
// fixed complexity (fc), fixed train set (fts) and fixed error (fe).
var Challenges = []string{"fc", "fts", "fe"}

var Version = "dev"

// LogFilePath defines the default path for the log file when debug is enabled
var LogFilePath = "dojo-cli.log"

var MaxLogLines = 1000 // Maximum number of lines to keep in the log file

// IsKnownChallenge reports whether name is one of the challenge kinds the
// harness produces. Unknown names are still accepted everywhere (the naming
// convention is free text); this only drives a warning.
func IsKnownChallenge(name string) bool {
	for _, c := range Challenges {
		if name == c {
			return true
		}
	}
	return false
}

// ChallengeHint returns the prompt hint listing the known challenge kinds.
func ChallengeHint() string {
	return strings.Join(Challenges, ", ")
}
