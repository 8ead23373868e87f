package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kestrelgen/gedkit/bytesource"
	"github.com/kestrelgen/gedkit/cancel"
	"github.com/kestrelgen/gedkit/decoder"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file.ged>",
	Short: "Decode a GEDCOM file and print a record summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := args[0]

	src, err := bytesource.FromFile(path)
	if err != nil {
		return err
	}
	defer bytesource.CloseIfCloser(src)

	flag := cancel.New()
	stop := notifyInterrupt(flag)
	defer stop()

	opts := decoder.DefaultOptions()
	opts.CancelFlag = flag
	if progress && !quiet {
		bar := progressbar.DefaultBytes(src.Size(), fmt.Sprintf("decoding %s", path))
		opts.FileObservers = []decoder.ProgressCallback{func(bytesRead, totalBytes int64) {
			_ = bar.Set64(bytesRead)
		}}
		defer bar.Close()
	}

	result, err := decoder.DecodeWithDiagnostics(src, opts)
	if err != nil {
		return err
	}

	doc := result.Document
	fmt.Printf("Version: %s\n", doc.Header.Version)
	fmt.Printf("Encoding: %s\n", doc.Header.Encoding)
	fmt.Printf("Individuals: %d\n", len(doc.Individuals()))
	fmt.Printf("Families: %d\n", len(doc.Families()))
	fmt.Printf("Sources: %d\n", len(doc.Sources()))
	fmt.Printf("Repositories: %d\n", len(doc.Repositories()))
	fmt.Printf("Notes: %d\n", len(doc.Notes()))
	fmt.Printf("Multimedia objects: %d\n", len(doc.MultimediaObjects()))
	fmt.Printf("Submitters: %d\n", len(doc.Submitters()))

	if len(result.Diagnostics) > 0 {
		fmt.Printf("\nDiagnostics (%d):\n", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Printf("  [%s] %s\n", d.Severity, d.Message)
		}
	}

	if result.Diagnostics.HasErrors() {
		return fmt.Errorf("decode produced %d error-severity diagnostic(s)", countErrors(result.Diagnostics))
	}
	return nil
}

func countErrors(diags decoder.Diagnostics) int {
	n := 0
	for _, d := range diags {
		if d.Severity == decoder.SeverityError {
			n++
		}
	}
	return n
}

// notifyInterrupt requests cancellation on the shared flag when the process
// receives an interrupt signal, so a Ctrl-C during decode unwinds through
// the decoder's own cancellation path rather than killing the process.
func notifyInterrupt(flag *cancel.Flag) (stop func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	done := make(chan struct{})
	go func() {
		select {
		case <-sig:
			flag.Request()
		case <-done:
		}
	}()
	return func() {
		close(done)
		signal.Stop(sig)
	}
}
