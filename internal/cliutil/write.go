// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinArg is the argument that makes a command read its items from stdin.
const StdinArg = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ReadLines returns the non-blank lines of r with surrounding whitespace removed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cliutil: reading lines: %w", err)
	}
	return lines, nil
}

// ExpandArgs returns args, or the lines of stdin when args is exactly ["-"].
func ExpandArgs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) == 1 && args[0] == StdinArg {
		return ReadLines(stdin)
	}
	return args, nil
}
