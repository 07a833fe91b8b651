// Package commands provides CLI command handlers for romans.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/romans/internal/cliutil"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Standard streams used by the handlers. Tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ErrItemsFailed is wrapped by the error a handler returns when at least one
// input item could not be converted.
var ErrItemsFailed = errors.New("one or more items failed")

// printer renders counts with digit grouping in summary lines.
var printer = message.NewPrinter(language.English)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(stdout, "%s\n", bytes)
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// itemArgs returns the positional arguments, reading them from stdin for "-".
func itemArgs(args []string) ([]string, error) {
	items, err := cliutil.ExpandArgs(args, stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return items, nil
}

// summarize prints the closing summary line to stderr and returns the error
// for a run with failures.
func summarize(noun string, total, failed int, quiet bool) error {
	if !quiet {
		if failed == 0 {
			Writef(stderr, "%s", printer.Sprintf("✓ %d %s processed\n", total, noun))
		} else {
			Writef(stderr, "%s", printer.Sprintf("✗ %d of %d %s failed\n", failed, total, noun))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%s: %w", printer.Sprintf("%d of %d %s", failed, total, noun), ErrItemsFailed)
	}
	return nil
}
