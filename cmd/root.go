/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/dynadojo/dojo-cli/internal/constants"
	"github.com/dynadojo/dojo-cli/internal/logger"
	"github.com/spf13/cobra"
)

var (
	debugLogging bool // Variable to store the debug flag value
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dojo",
	Short: "Helper for rerunning dynadojo experiments on the cluster",
	Long: `dojo is a terminal helper for dynadojo experiment clusters.

A previous experiment run leaves its params file under
$DD_SCRATCH_DIR/$DD_OUTPUT_DIR/<challenge>/<system>/. This tool finds those
directories by the <challenge>_<system>_<algorithm> naming convention, lets
you pick one, and submits a rerun job against it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger globally here
		loggerOpts := logger.DefaultOptions()
		// Always set the file path
		loggerOpts.FilePath = constants.LogFilePath

		if debugLogging {
			// Attempt to truncate the log file at the start
			if err := os.Truncate(constants.LogFilePath, 0); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "[WARN] Failed to clear log file %s: %v\n", constants.LogFilePath, err)
			}
			loggerOpts.Level = logger.DEBUG
		} else {
			loggerOpts.Level = logger.INFO
		}

		logger.Initialize(loggerOpts)

		if debugLogging {
			logger.Debug("Logging debug messages to: %s (max lines: %d)",
				constants.LogFilePath, constants.MaxLogLines)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add the persistent debug flag
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging to dojo-cli.log")
}
