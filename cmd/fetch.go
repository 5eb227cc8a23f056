package cmd

import (
	"github.com/folioworks/gitfolio/core"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/spf13/cobra"
)

// fetchCmd snapshots repository metadata from the GitHub API.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Snapshot repository metadata from the GitHub API.",
	Long: `Query the GitHub API for the authenticated user's repositories and save
the metadata into record files under the data directory.

Writes three files per run, each as a timestamped snapshot plus a
stable current copy:
- github-repos.csv: name, visibility, description, license, fork and
  archive flags
- github-langs.csv: per-repository language byte counts
- github-topics.csv: per-repository topic tags

The session is also recorded in the run store (see 'gitfolio runs').

The personal access token is read from the --key-file settings file
(a 'key = "..."' line) or the GITFOLIO_TOKEN environment variable.

Examples:
  # Fetch with a token settings file
  gitfolio fetch --key-file ~/.config/gitfolio-settings.txt

  # Fetch with the token in the environment
  GITFOLIO_TOKEN=ghp_xxx gitfolio fetch`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFetch(rootCtx, cfg, runCtx); err != nil {
			contract.LogFatal("Cannot fetch repository metadata", err)
		}
	},
}
