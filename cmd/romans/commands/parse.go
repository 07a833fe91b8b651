package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/romans/roman"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Strict bool
	Quiet  bool
	Format string
}

// parseItem is one row of structured parse output.
type parseItem struct {
	Input     string        `json:"input" yaml:"input"`
	Value     int           `json:"value,omitempty" yaml:"value,omitempty"`
	Canonical string        `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Warnings  []roman.Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "reject numerals that are not uppercase")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output values, no warnings or summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output values, no warnings or summary")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: romans parse [flags] <numeral...|->\n\n")
		Writef(fs.Output(), "Convert Roman numerals to integers. Only canonical numerals are accepted.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  romans parse MCMXCIV\n")
		Writef(fs.Output(), "  romans parse --strict XIV\n")
		Writef(fs.Output(), "  cat numerals.txt | romans parse -\n")
		Writef(fs.Output(), "  romans parse --format yaml mmxxiv\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Lowercase letters are accepted with a warning unless --strict is set\n")
		Writef(fs.Output(), "  - Non-canonical spellings such as IIII or IC are rejected\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("parse command requires at least one numeral or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs, err := itemArgs(fs.Args())
	if err != nil {
		return err
	}

	items := make([]parseItem, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		item := parseItem{Input: in}
		result, parseErr := roman.ParseWithOptions(roman.WithText(in), roman.WithStrict(flags.Strict))
		if parseErr != nil {
			item.Error = parseErr.Error()
			failed++
		} else {
			item.Value = result.Value
			item.Canonical = result.Canonical
			item.Warnings = result.Warnings
		}
		items = append(items, item)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(items, flags.Format); err != nil {
			return err
		}
		return summarize("numerals", len(items), failed, true)
	}

	for _, item := range items {
		if item.Error != "" {
			Writef(stderr, "✗ %s\n", item.Error)
			continue
		}
		if len(items) == 1 {
			Writef(stdout, "%d\n", item.Value)
		} else {
			Writef(stdout, "%s\t%d\n", item.Input, item.Value)
		}
		if !flags.Quiet {
			for _, w := range item.Warnings {
				Writef(stderr, "  %s\n", w.String())
			}
		}
	}
	return summarize("numerals", len(items), failed, flags.Quiet || len(items) == 1)
}
