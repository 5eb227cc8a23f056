package cmd

import (
	"github.com/folioworks/gitfolio/core"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/spf13/cobra"
)

// runsCmd lists recorded fetch sessions.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded fetch sessions.",
	Long: `Display the fetch sessions recorded in the run store, most recent
first, with the snapshot stamp and record counts of each.

Examples:
  # Show the latest sessions
  gitfolio runs

  # Show more history
  gitfolio runs --runs-limit 100`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRuns(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list fetch sessions", err)
		}
	},
}
