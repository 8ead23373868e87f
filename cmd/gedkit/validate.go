package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelgen/gedkit/bytesource"
	"github.com/kestrelgen/gedkit/decoder"
	"github.com/kestrelgen/gedkit/validator"
)

var strictValidate bool

var validateCmd = &cobra.Command{
	Use:   "validate <file.ged>",
	Short: "Decode a GEDCOM file and report validation errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strictValidate, "strict", false, "treat any validation error as a command failure")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	src, err := bytesource.FromFile(path)
	if err != nil {
		return err
	}
	defer bytesource.CloseIfCloser(src)

	doc, err := decoder.Decode(src)
	if err != nil {
		return err
	}

	v := validator.New()
	errs := v.Validate(doc)

	if len(errs) == 0 {
		fmt.Println("no validation errors")
		return nil
	}

	fmt.Printf("%d validation error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("  - %v\n", e)
	}

	if strictValidate {
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	return nil
}
