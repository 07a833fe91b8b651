package main

import (
	"fmt"
	"os"

	"github.com/erraggy/romans"
	"github.com/erraggy/romans/cmd/romans/commands"
)

// commandNames lists every dispatchable command for typo suggestions.
var commandNames = []string{"format", "parse", "validate", "table", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	switch command {
	case "version", "-v", "--version":
		fmt.Println(romans.BuildInfo())
		return nil
	case "help", "-h", "--help":
		printUsage()
		return nil
	case "format":
		return commands.HandleFormat(args)
	case "parse":
		return commands.HandleParse(args)
	case "validate":
		return commands.HandleValidate(args)
	case "table":
		return commands.HandleTable(args)
	case "mcp":
		return commands.HandleMCP(args)
	default:
		msg := fmt.Sprintf("unknown command: %s", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		printUsage()
		return fmt.Errorf("%s", msg)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `romans - Roman numeral conversion tools

Usage:
  romans <command> [options]

Commands:
  format      Convert integers to Roman numerals
  parse       Convert Roman numerals to integers
  validate    Check Roman numerals and explain any rule they break
  table       List integers alongside their Roman numerals
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  romans format 1994
  romans parse MCMXCIV
  romans validate IIII VX IC
  romans table --from 1 --to 20
  seq 1 100 | romans format -

Run 'romans <command> --help' for more information on a command.`)
}
