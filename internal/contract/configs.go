package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/folioworks/gitfolio/schema"
)

// Default directory names relative to the working directory.
const (
	DefaultDataDir   = "data"
	DefaultOutputDir = "output"
)

// DefaultWorkers is the default number of concurrent language fetches.
const DefaultWorkers = 4

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir       string
	OutputDir     string
	IntoFile      string // Document to splice rendered sections into, empty to skip
	KeyFile       string
	AltNamesFile  string
	Format        schema.OutputFormat
	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext
	Workers       int
	RunsLimit     int
	UseColors     bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	DataDir       string `mapstructure:"data-dir"`
	OutputDir     string `mapstructure:"output-to"`
	IntoFile      string `mapstructure:"insert-into"`
	KeyFile       string `mapstructure:"key-file"`
	AltNamesFile  string `mapstructure:"alt-names"`
	Format        string `mapstructure:"format"`
	RunsBackend   string `mapstructure:"runs-backend"`
	RunsDBConnect string `mapstructure:"runs-db-connect"`
	Workers       int    `mapstructure:"workers"`
	RunsLimit     int    `mapstructure:"runs-limit"`
	Color         string `mapstructure:"color"`
}

// ProcessAndValidate turns the raw input into a validated Config.
// Path existence checks that depend on the command (output directory
// creation, splice target) happen later so that fetch-only runs do not
// demand an output directory.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	cfg.IntoFile = input.IntoFile
	cfg.KeyFile = input.KeyFile

	cfg.AltNamesFile = input.AltNamesFile
	if cfg.AltNamesFile == "" {
		cfg.AltNamesFile = filepath.Join("input", schema.AltNamesCSV)
	}

	cfg.Format = schema.OutputFormat(input.Format)
	if _, ok := schema.ValidOutputFormats[cfg.Format]; !ok {
		return fmt.Errorf("invalid format %q: must be csv or parquet", input.Format)
	}

	cfg.RunsBackend = schema.DatabaseBackend(input.RunsBackend)
	if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
		return fmt.Errorf("invalid runs backend %q: must be sqlite, mysql, postgresql, or none", input.RunsBackend)
	}
	cfg.RunsDBConnect = input.RunsDBConnect

	cfg.Workers = input.Workers
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	cfg.RunsLimit = input.RunsLimit
	if cfg.RunsLimit <= 0 {
		cfg.RunsLimit = 25
	}

	cfg.UseColors = ParseBoolishFlag(input.Color, true) && isTerminal(os.Stdout)
	ApplyColorMode(cfg.UseColors)

	return nil
}

// EnsureOutputDir verifies that the configured output directory exists,
// offering to create it through the prompter when it does not. An
// unconfirmed or failed creation is an error so no partial report run
// starts without a destination.
func EnsureOutputDir(cfg *Config, prompter Prompter) error {
	info, err := os.Stat(cfg.OutputDir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("'%s' is not a directory", cfg.OutputDir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access output directory '%s': %w", cfg.OutputDir, err)
	}

	fmt.Printf("Directory does not exist: '%s'\n", cfg.OutputDir)
	answer, err := prompter.Ask(
		"Would you like to create it?  Enter (Y)es or (n)o: ",
		[]string{"y", "n"},
		"y",
	)
	if err != nil {
		return err
	}
	if answer != "y" {
		return fmt.Errorf("output directory '%s' does not exist", cfg.OutputDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory '%s': %w", cfg.OutputDir, err)
	}
	return nil
}

// EnsureIntoFile verifies that the splice target exists when one was given.
func EnsureIntoFile(cfg *Config) error {
	if cfg.IntoFile == "" {
		return nil
	}
	if _, err := os.Stat(cfg.IntoFile); err != nil {
		return fmt.Errorf("cannot find '%s'", cfg.IntoFile)
	}
	return nil
}

// RunContext is the immutable per-run context: one timestamp taken at
// startup plus the generator identity, passed into every component instead
// of being read from module-level state.
type RunContext struct {
	RunTime time.Time
	Version string
}

// NewRunContext captures the current instant as the run timestamp.
func NewRunContext(version string) *RunContext {
	return &RunContext{RunTime: time.Now().UTC(), Version: version}
}

// Stamp returns the local-time identifier used for snapshot directories.
func (r *RunContext) Stamp() string {
	return r.RunTime.Local().Format("20060102_150405")
}

// Title returns the generator identity recorded in outputs.
func (r *RunContext) Title() string {
	return fmt.Sprintf("gitfolio (v%s)", r.Version)
}

// SnapshotDir returns the timestamped subdirectory of base for this run.
func (r *RunContext) SnapshotDir(base string) string {
	return filepath.Join(base, r.Stamp())
}
