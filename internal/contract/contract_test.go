package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/folioworks/gitfolio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Format:      string(schema.CSVFormat),
		RunsBackend: string(schema.SQLiteBackend),
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, validInput()))

	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, filepath.Join("input", schema.AltNamesCSV), cfg.AltNamesFile)
	assert.Equal(t, schema.CSVFormat, cfg.Format)
	assert.Equal(t, schema.SQLiteBackend, cfg.RunsBackend)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, 25, cfg.RunsLimit)
	assert.Empty(t, cfg.IntoFile)
}

func TestProcessAndValidateExplicitValues(t *testing.T) {
	input := &ConfigRawInput{
		DataDir:      "mydata",
		OutputDir:    "myout",
		IntoFile:     "README.md",
		KeyFile:      "token.ini",
		AltNamesFile: "names.csv",
		Format:       string(schema.ParquetFormat),
		RunsBackend:  string(schema.NoneBackend),
		Workers:      8,
		RunsLimit:    5,
	}

	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, input))
	assert.Equal(t, "mydata", cfg.DataDir)
	assert.Equal(t, "myout", cfg.OutputDir)
	assert.Equal(t, "README.md", cfg.IntoFile)
	assert.Equal(t, "token.ini", cfg.KeyFile)
	assert.Equal(t, "names.csv", cfg.AltNamesFile)
	assert.Equal(t, schema.ParquetFormat, cfg.Format)
	assert.Equal(t, schema.NoneBackend, cfg.RunsBackend)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 5, cfg.RunsLimit)
}

func TestProcessAndValidateRejectsBadValues(t *testing.T) {
	badFormat := validInput()
	badFormat.Format = "xml"
	assert.ErrorContains(t, ProcessAndValidate(&Config{}, badFormat), "invalid format")

	badBackend := validInput()
	badBackend.RunsBackend = "oracle"
	assert.ErrorContains(t, ProcessAndValidate(&Config{}, badBackend), "invalid runs backend")
}

func TestApplyColorMode(t *testing.T) {
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	ApplyColorMode(false)
	assert.True(t, color.NoColor)

	ApplyColorMode(true)
	assert.False(t, color.NoColor)
}

func TestProcessAndValidateDisablesColor(t *testing.T) {
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	input := validInput()
	input.Color = "no"

	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, input))
	assert.False(t, cfg.UseColors)
	assert.True(t, color.NoColor)
}

func TestEnsureOutputDirExisting(t *testing.T) {
	cfg := &Config{OutputDir: t.TempDir()}
	assert.NoError(t, EnsureOutputDir(cfg, &ScriptedPrompter{}))
}

func TestEnsureOutputDirNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	cfg := &Config{OutputDir: path}
	assert.ErrorContains(t, EnsureOutputDir(cfg, &ScriptedPrompter{}), "not a directory")
}

func TestEnsureOutputDirCreatesOnConfirm(t *testing.T) {
	cfg := &Config{OutputDir: filepath.Join(t.TempDir(), "reports")}

	require.NoError(t, EnsureOutputDir(cfg, &ScriptedPrompter{Answers: []string{"y"}}))
	info, err := os.Stat(cfg.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureOutputDirDeclined(t *testing.T) {
	cfg := &Config{OutputDir: filepath.Join(t.TempDir(), "reports")}

	err := EnsureOutputDir(cfg, &ScriptedPrompter{Answers: []string{"n"}})
	require.Error(t, err)
	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureIntoFile(t *testing.T) {
	assert.NoError(t, EnsureIntoFile(&Config{}))

	path := filepath.Join(t.TempDir(), "README.md")
	assert.ErrorContains(t, EnsureIntoFile(&Config{IntoFile: path}), "cannot find")

	require.NoError(t, os.WriteFile(path, []byte("# hi\n"), 0o644))
	assert.NoError(t, EnsureIntoFile(&Config{IntoFile: path}))
}

func TestStdinPrompter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"direct answer", "n\n", "n"},
		{"uppercase normalized", "Y\n", "y"},
		{"empty picks default", "\n", "y"},
		{"retries until valid", "maybe\nn\n", "n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			p := &StdinPrompter{In: strings.NewReader(tc.input), Out: &out}
			got, err := p.Ask("Continue? ", []string{"y", "n"}, "y")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStdinPrompterExhaustedInput(t *testing.T) {
	p := &StdinPrompter{In: strings.NewReader(""), Out: &strings.Builder{}}
	_, err := p.Ask("Continue? ", []string{"y", "n"}, "")
	assert.Error(t, err)
}

func TestScriptedPrompter(t *testing.T) {
	p := &ScriptedPrompter{Answers: []string{"n"}}

	got, err := p.Ask("q", []string{"y", "n"}, "y")
	require.NoError(t, err)
	assert.Equal(t, "n", got)

	// Exhausted script falls back to the default.
	got, err = p.Ask("q", []string{"y", "n"}, "y")
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestRunContext(t *testing.T) {
	rc := &RunContext{
		RunTime: time.Date(2026, time.March, 14, 9, 26, 42, 0, time.UTC),
		Version: "1.2.3",
	}

	assert.Equal(t, "gitfolio (v1.2.3)", rc.Title())
	assert.Equal(t, rc.RunTime.Local().Format("20060102_150405"), rc.Stamp())
	assert.Equal(t, filepath.Join("output", rc.Stamp()), rc.SnapshotDir("output"))
}

func TestNewRunContextUsesUTC(t *testing.T) {
	rc := NewRunContext("dev")
	assert.Equal(t, time.UTC, rc.RunTime.Location())
	assert.Equal(t, "dev", rc.Version)
}

func TestParseBoolishFlag(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"yes", false, true},
		{"TRUE", false, true},
		{" on ", false, true},
		{"1", false, true},
		{"no", true, false},
		{"off", true, false},
		{"0", true, false},
		{"", true, true},
		{"", false, false},
		{"auto", true, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseBoolishFlag(tc.in, tc.def), "input %q", tc.in)
	}
}
