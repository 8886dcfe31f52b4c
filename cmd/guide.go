package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the rerun workflow guide",
	Long:  `Renders the workflow guide explaining where params files live and how rerun jobs are submitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := glamour.Render(guideMarkdown, "dark")
		if err != nil {
			return fmt.Errorf("rendering guide: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
