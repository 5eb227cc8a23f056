package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// runCtx is the immutable per-run context built during shared setup.
var runCtx *contract.RunContext

// prompter answers interactive questions; tests swap in a scripted one.
var prompter contract.Prompter = &contract.StdinPrompter{In: os.Stdin, Out: os.Stdout}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "gitfolio",
	Short:              "Turn GitHub repository metadata into reports and README sections.",
	Long:               `Gitfolio snapshots a user's repository metadata and derives language, topic, and license reports from it.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided. The config flag is
	// bound to viper during package init, before cobra invokes this
	// OnInitialize callback.
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gitfolio") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GITFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("data-dir", contract.DefaultDataDir)
	viper.SetDefault("format", string(schema.CSVFormat))
	viper.SetDefault("runs-backend", string(schema.SQLiteBackend))
	viper.SetDefault("runs-db-connect", "")
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("runs-limit", 25)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config, runs validation, and builds the run
// context every command shares.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run validation. This populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 4. Capture the run timestamp once; every component receives it.
	runCtx = contract.NewRunContext(version)

	fmt.Printf("\n%s\n\n", runCtx.Title())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
