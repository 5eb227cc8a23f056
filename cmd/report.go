package cmd

import (
	"github.com/folioworks/gitfolio/core"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd derives the tabular reports from the raw record files.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Derive tabular reports from the fetched record files.",
	Long: `Read the raw record files from the data directory and write the derived
reports to the output directory, each as a timestamped snapshot plus a
stable current copy:

- repos-public.csv / repos-private.csv: repository fields plus the
  computed language summary string
- repos-public-md.csv: public repositories with a markdown link column
- repos-langs.csv: per-language usage counts and normalized shares,
  split by visibility
- repos-topics.csv: topic rows cross-referenced with licenses

The aggregate language table is also printed to the console.

Examples:
  # Derive reports into the default output directory
  gitfolio report

  # Write to another directory and add Parquet copies
  gitfolio report -o /tmp/reports --format parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(cfg, runCtx, prompter); err != nil {
			contract.LogFatal("Cannot derive reports", err)
		}
	},
}
