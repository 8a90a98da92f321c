package cmd

import (
	"github.com/codetrail/gemini-reviewer/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gemini-reviewer",
	Short: "Gemini Reviewer - automated pull request review from CI",
	Long: `Gemini Reviewer is a CLI invoked by CI on pull request events.
It diffs the pull request against its base branch, asks the Gemini API for a
structured review, and posts the resulting comments back onto the pull request.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}
