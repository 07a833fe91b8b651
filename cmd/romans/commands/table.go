package commands

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/erraggy/romans/roman"
)

// TableFlags contains flags for the table command
type TableFlags struct {
	From   int
	To     int
	Format string
}

// SetupTableFlags creates and configures a FlagSet for the table command.
// Returns the FlagSet and a TableFlags struct with bound flag variables.
func SetupTableFlags() (*flag.FlagSet, *TableFlags) {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	flags := &TableFlags{}

	fs.IntVar(&flags.From, "from", roman.MinValue, "first value of the range")
	fs.IntVar(&flags.To, "to", roman.MaxValue, "last value of the range")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: romans table [flags]\n\n")
		Writef(fs.Output(), "List integers alongside their canonical Roman numerals.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  romans table --to 20\n")
		Writef(fs.Output(), "  romans table --from 1990 --to 2030 --format yaml\n")
	}

	return fs, flags
}

// HandleTable executes the table command
func HandleTable(args []string) error {
	fs, flags := SetupTableFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("table command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	rows, err := roman.Table(flags.From, flags.To)
	if err != nil {
		return fmt.Errorf("building table: %w", err)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(rows, flags.Format)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	Writef(tw, "VALUE\tNUMERAL\n")
	for _, row := range rows {
		Writef(tw, "%d\t%s\n", row.Value, row.Numeral)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
