// Package cmd defines the command-line interface for gitfolio.
package cmd

import (
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory holding the raw record files")
	// output-to is shared by report and markdown; a single binding on the
	// root keeps one viper key, since BindPFlags keeps only the last flag
	// bound to a name.
	rootCmd.PersistentFlags().StringP("output-to", "o", "", "Directory in which to create output files (default \"output\")")
	rootCmd.PersistentFlags().String("runs-backend", string(schema.SQLiteBackend), "Run store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored status output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of fetchCmd to Viper
	fetchCmd.Flags().StringP("key-file", "k", "", "File containing the GitHub personal access token")
	fetchCmd.Flags().Int("workers", contract.DefaultWorkers, "Number of concurrent language fetches")
	if err := viper.BindPFlags(fetchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding fetch flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("format", string(schema.CSVFormat), "Derived report format: csv or parquet (parquet adds a Parquet copy)")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of markdownCmd to Viper
	markdownCmd.Flags().String("insert-into", "", "Existing file in which to insert the rendered sections")
	markdownCmd.Flags().String("alt-names", "", "Topic alt-name overlay file (default \"input/topics_altnames.csv\")")
	if err := viper.BindPFlags(markdownCmd.Flags()); err != nil {
		contract.LogFatal("Error binding markdown flags", err)
	}

	// Bind all flags of runsCmd to Viper
	runsCmd.Flags().Int("runs-limit", 25, "Number of recorded sessions to display")
	if err := viper.BindPFlags(runsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs flags", err)
	}
}
