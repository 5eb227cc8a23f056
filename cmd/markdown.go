package cmd

import (
	"github.com/folioworks/gitfolio/core"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/spf13/cobra"
)

// markdownCmd renders the grouped markdown documents.
var markdownCmd = &cobra.Command{
	Use:   "markdown",
	Short: "Render repositories grouped by topic and by license as markdown.",
	Long: `Read the raw record files and write two markdown documents listing
public repositories grouped by topic and by license, as nested
collapsible sections.

With --insert-into, the rendered sections also replace the content
between the marker tag pairs in an existing document (such as a
README.md):

  <!-- Begin_Repositories_by_Topic --> / <!-- End_Repositories_by_Topic -->
  <!-- Begin_Repositories_by_License --> / <!-- End_Repositories_by_License -->

A document missing a tag pair is left unchanged for that section. The
replacement is idempotent, so the command can run on every refresh.

Examples:
  # Write repos-by-topic.md and repos-by-license.md
  gitfolio markdown

  # Also refresh the sections inside a README
  gitfolio markdown --insert-into README.md`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMarkdown(cfg, runCtx, prompter); err != nil {
			contract.LogFatal("Cannot render markdown", err)
		}
	},
}
