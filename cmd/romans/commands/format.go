package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/romans/roman"
)

// FormatFlags contains flags for the format command
type FormatFlags struct {
	Quiet  bool
	Format string
}

// formatItem is one row of structured format output.
type formatItem struct {
	Input   string `json:"input" yaml:"input"`
	Value   int    `json:"value,omitempty" yaml:"value,omitempty"`
	Numeral string `json:"numeral,omitempty" yaml:"numeral,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetupFormatFlags creates and configures a FlagSet for the format command.
// Returns the FlagSet and a FormatFlags struct with bound flag variables.
func SetupFormatFlags() (*flag.FlagSet, *FormatFlags) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	flags := &FormatFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output numerals, no summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output numerals, no summary")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: romans format [flags] <value...|->\n\n")
		Writef(fs.Output(), "Convert integers between %d and %d to canonical Roman numerals.\n\n", roman.MinValue, roman.MaxValue)
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  romans format 1994\n")
		Writef(fs.Output(), "  romans format 4 9 14 40\n")
		Writef(fs.Output(), "  seq 1 20 | romans format -q -\n")
		Writef(fs.Output(), "  romans format --format json 2024\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Every value was converted\n")
		Writef(fs.Output(), "  1    At least one value was not an integer in range\n")
	}

	return fs, flags
}

// HandleFormat executes the format command
func HandleFormat(args []string) error {
	fs, flags := SetupFormatFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("format command requires at least one integer or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs, err := itemArgs(fs.Args())
	if err != nil {
		return err
	}

	items := make([]formatItem, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		item := formatItem{Input: in}
		n, convErr := strconv.Atoi(strings.TrimSpace(in))
		if convErr != nil {
			item.Error = fmt.Sprintf("'%s' is not an integer", in)
		} else if numeral, fmtErr := roman.ToRoman(n); fmtErr != nil {
			item.Error = fmtErr.Error()
		} else {
			item.Value = n
			item.Numeral = numeral
		}
		if item.Error != "" {
			failed++
		}
		items = append(items, item)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(items, flags.Format); err != nil {
			return err
		}
		return summarize("values", len(items), failed, true)
	}

	for _, item := range items {
		if item.Error != "" {
			Writef(stderr, "✗ %s\n", item.Error)
			continue
		}
		if len(items) == 1 {
			Writef(stdout, "%s\n", item.Numeral)
		} else {
			Writef(stdout, "%d\t%s\n", item.Value, item.Numeral)
		}
	}
	return summarize("values", len(items), failed, flags.Quiet || len(items) == 1)
}
