package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color variables for console output.
var (
	HeaderColor = color.New(color.FgCyan, color.Bold) // section headers
	PathColor   = color.New(color.FgGreen)            // file paths in status lines
	WarnColor   = color.New(color.FgYellow)           // recoverable conditions
)

// ApplyColorMode turns all colored output on or off. The Status* and
// LogWarn helpers render plain text once colors are disabled.
func ApplyColorMode(enabled bool) {
	color.NoColor = !enabled
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", WarnColor.Sprint("Warning"), msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", WarnColor.Sprint("Warning"), msg)
}

// StatusReading prints a standard "reading file" status line.
func StatusReading(path string) {
	fmt.Printf("Reading %s.\n", PathColor.Sprintf("'%s'", path))
}

// StatusWriting prints a standard "writing file" status line.
func StatusWriting(path string) {
	fmt.Printf("Writing %s.\n", PathColor.Sprintf("'%s'", path))
}

// StatusCopying prints a standard "copying to current pointer" status line.
func StatusCopying(path string) {
	fmt.Printf("Copy to %s.\n", PathColor.Sprintf("'%s'", path))
}

// ParseBoolishFlag interprets the loose yes/no flag values accepted on the
// command line and in config files.
func ParseBoolishFlag(s string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y", "on":
		return true
	case "no", "false", "0", "n", "off":
		return false
	default:
		return defaultValue
	}
}

// isTerminal reports whether f is attached to a terminal. Colors are
// disabled for piped output.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
