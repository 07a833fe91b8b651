package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/romans/roman"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Format     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "report lowercase letters as errors instead of warnings")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: romans validate [flags] <numeral...|->\n\n")
		Writef(fs.Output(), "Check Roman numerals and report which rule each invalid one breaks.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  romans validate XLII\n")
		Writef(fs.Output(), "  romans validate IIII VX IC\n")
		Writef(fs.Output(), "  cat numerals.txt | romans validate -q -\n")
		Writef(fs.Output(), "  romans validate --format json IIV | jq '.[0].errors'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Every numeral is valid\n")
		Writef(fs.Output(), "  1    At least one numeral is invalid\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("validate command requires at least one numeral or '-' for stdin")
	}

	// Validate format flag early to fail fast before reading stdin
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs, err := itemArgs(fs.Args())
	if err != nil {
		return err
	}

	results := make([]*roman.ValidationResult, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		result, err := roman.ValidateWithOptions(roman.WithText(in), roman.WithStrict(flags.Strict))
		if err != nil {
			return fmt.Errorf("validating %q: %w", in, err)
		}
		if flags.NoWarnings {
			result.Warnings = nil
			result.WarningCount = 0
		}
		if !result.Valid {
			failed++
		}
		results = append(results, result)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(results, flags.Format); err != nil {
			return err
		}
		return summarize("numerals", len(results), failed, true)
	}

	for _, result := range results {
		if result.Valid {
			Writef(stdout, "✓ %s = %d\n", result.Input, result.Value)
		} else {
			Writef(stdout, "✗ %s\n", result.Input)
		}
		if flags.Quiet {
			continue
		}
		for _, e := range result.Errors {
			Writef(stderr, "  %s\n", e.String())
		}
		for _, w := range result.Warnings {
			Writef(stderr, "  %s\n", w.String())
		}
	}
	return summarize("numerals", len(results), failed, flags.Quiet)
}
