// Command gedkit is a command-line driver over the gedkit decoder and
// validator: decode a GEDCOM file and print a summary, or validate one and
// report diagnostics, with exit codes distinguishing fatal decode errors
// from cancellation and I/O failure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	quiet    bool
	noColor  bool
	progress bool
)

var rootCmd = &cobra.Command{
	Use:     "gedkit",
	Short:   "Read, validate, and inspect GEDCOM 5.5/5.5.1 files",
	Long:    "gedkit decodes GEDCOM 5.5 and 5.5.1 genealogy files into a typed object graph and reports the diagnostics produced along the way.",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored status markers")
	rootCmd.PersistentFlags().BoolVar(&progress, "progress", true, "show a byte-progress bar while decoding")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(validateCmd)
}

const version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gedkit: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
}
