package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dynadojo/dojo-cli/internal/config"
	"github.com/dynadojo/dojo-cli/internal/constants"
	"github.com/dynadojo/dojo-cli/internal/launcher"
	"github.com/dynadojo/dojo-cli/internal/logger"
	"github.com/dynadojo/dojo-cli/internal/selector"
	"github.com/dynadojo/dojo-cli/internal/ui"
)

var (
	rerunChallenge string
	rerunSystem    string
	rerunAlgorithm string
	rerunLauncher  string
	rerunSelect    int
	rerunExact     bool
	rerunDryRun    bool
)

var rerunCmd = &cobra.Command{
	Use:   "rerun",
	Short: "Pick a previous run's params file and submit a rerun job",
	Long: `Finds the output directories of a previous experiment run by the
<challenge>_<system>_<algorithm> naming convention, lets you pick one, and
submits a rerun job with the picked params file path as its only argument.

Any fragment not given as a flag is prompted for interactively.`,
	Example: `  dojo rerun
  dojo rerun --challenge fc --system LDSSystem --algorithm lr --select 1
  dojo rerun --exact --dry-run`,
	RunE: runRerun,
}

func init() {
	rootCmd.AddCommand(rerunCmd)
	rerunCmd.Flags().StringVar(&rerunChallenge, "challenge", "", fmt.Sprintf("Challenge kind (%s)", constants.ChallengeHint()))
	rerunCmd.Flags().StringVar(&rerunSystem, "system", "", "System name")
	rerunCmd.Flags().StringVar(&rerunAlgorithm, "algorithm", "", "Algorithm name")
	rerunCmd.Flags().IntVar(&rerunSelect, "select", 0, "Pick the Nth match (1-based) instead of showing the menu")
	rerunCmd.Flags().BoolVar(&rerunExact, "exact", false, "Anchor the match to the start of the directory name")
	rerunCmd.Flags().BoolVar(&rerunDryRun, "dry-run", false, "Print the submission command instead of running it")
	rerunCmd.Flags().StringVar(&rerunLauncher, "launcher", "", "Job submission executable (overrides "+constants.EnvLauncher+")")
}

func runRerun(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		ui.Error(err.Error())
		return err
	}

	// Blank or whitespace-only flag values fall back to prompting.
	frags := ui.Fragments{
		Challenge: rerunChallenge,
		System:    rerunSystem,
		Algorithm: rerunAlgorithm,
	}.Trimmed()
	if !frags.Complete() {
		frags, err = ui.AskFragments(frags)
		if err != nil {
			return err
		}
	}
	if !constants.IsKnownChallenge(frags.Challenge) {
		ui.Warning(fmt.Sprintf("Unknown challenge %q (known: %s); matching anyway", frags.Challenge, constants.ChallengeHint()))
	}

	req := selector.Request{
		Root:      cfg.ScratchDir,
		Output:    cfg.OutputDir,
		Challenge: frags.Challenge,
		System:    frags.System,
		Algorithm: frags.Algorithm,
		Exact:     rerunExact,
	}
	logger.Debug("Listing candidates in %s matching %q", req.ParentDir(), req.Token())

	ui.Section("Previous runs")
	ui.Warning("Params file paths are container-relative; the rerun job resolves them inside the experiment image.")

	candidates, err := selector.ListCandidates(req)
	if err != nil {
		ui.Error(err.Error())
		return err
	}
	if len(candidates) == 0 {
		// Normal outcome, not a failure.
		ui.Info(fmt.Sprintf("No params files found in %s", req.ParentDir()))
		return nil
	}

	var chosen selector.Candidate
	if rerunSelect > 0 {
		chosen, err = selector.ResolveSelection(candidates, rerunSelect)
	} else {
		chosen, err = ui.PickCandidate(candidates)
	}
	if err != nil {
		return err
	}

	ui.Println()
	ui.KeyValue("Selected", ui.SelectionStyle.Render(chosen.DisplayPath))

	// --select implies scripted use; only guard the interactive path.
	if !rerunDryRun && rerunSelect == 0 {
		if !ui.Confirmation("Submit the rerun job for this params file?") {
			ui.Info("Submission cancelled")
			return nil
		}
	}

	command := rerunLauncher
	if command == "" {
		command = cfg.Launcher
	}
	job := launcher.New(command)
	job.DryRun = rerunDryRun

	if err := job.Dispatch(cmd.Context(), chosen.DisplayPath); err != nil {
		ui.Error(err.Error())
		return err
	}
	if !rerunDryRun {
		ui.Success("Rerun job submitted")
	}
	return nil
}
