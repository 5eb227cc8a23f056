// main is the entry point for the gitfolio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/folioworks/gitfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
