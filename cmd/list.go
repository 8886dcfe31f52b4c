package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dynadojo/dojo-cli/internal/config"
	"github.com/dynadojo/dojo-cli/internal/constants"
	"github.com/dynadojo/dojo-cli/internal/selector"
	"github.com/dynadojo/dojo-cli/internal/ui"
)

var (
	listChallenge string
	listSystem    string
	listAlgorithm string
	listExact     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the params files matching a naming-convention filter",
	Long: `Lists the output directories of previous experiment runs matching the
<challenge>_<system>_<algorithm> naming convention, without submitting
anything. Exits successfully even when nothing matches.`,
	Example: "  dojo list --challenge fc --system LDSSystem --algorithm lr",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listChallenge, "challenge", "", fmt.Sprintf("Challenge kind (%s)", constants.ChallengeHint()))
	listCmd.Flags().StringVar(&listSystem, "system", "", "System name")
	listCmd.Flags().StringVar(&listAlgorithm, "algorithm", "", "Algorithm name")
	listCmd.Flags().BoolVar(&listExact, "exact", false, "Anchor the match to the start of the directory name")
	_ = listCmd.MarkFlagRequired("challenge")
	_ = listCmd.MarkFlagRequired("system")
	_ = listCmd.MarkFlagRequired("algorithm")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		ui.Error(err.Error())
		return err
	}

	// No terminal to re-ask on: blank flag values are a hard error here.
	frags := ui.Fragments{
		Challenge: listChallenge,
		System:    listSystem,
		Algorithm: listAlgorithm,
	}.Trimmed()
	if !frags.Complete() {
		err := errors.New("--challenge, --system and --algorithm must not be blank")
		ui.Error(err.Error())
		return err
	}

	req := selector.Request{
		Root:      cfg.ScratchDir,
		Output:    cfg.OutputDir,
		Challenge: frags.Challenge,
		System:    frags.System,
		Algorithm: frags.Algorithm,
		Exact:     listExact,
	}
	candidates, err := selector.ListCandidates(req)
	if err != nil {
		ui.Error(err.Error())
		return err
	}
	if len(candidates) == 0 {
		ui.Info(fmt.Sprintf("No params files found in %s", req.ParentDir()))
		return nil
	}

	fmt.Println(ui.TitleStyle.Render("Params files"))
	fmt.Println(ui.InfoStyle.Render("Searching " + req.ParentDir()))
	ui.KeyValue("Challenge", ui.ChallengeBadge(req.Challenge))
	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.DisplayPath})
	}
	return ui.Table([]string{"#", "Params file"}, rows)
}
