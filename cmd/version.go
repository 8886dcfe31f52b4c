package cmd

import (
	"fmt"
	"runtime"

	"github.com/dynadojo/dojo-cli/internal/constants"
	"github.com/spf13/cobra"
)

// versionCmd prints the current CLI version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dojo-cli %s\n", constants.Version)
		fmt.Printf("Go %s - %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
