package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/erraggy/romans"
	"github.com/erraggy/romans/internal/mcpserver"
)

// runServer is replaced in tests.
var runServer = mcpserver.Run

// SetupMCPFlags creates a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: romans mcp\n\n")
		Writef(fs.Output(), "Run the romans MCP server over stdio.\n\n")
		Writef(fs.Output(), "Tools: to_roman, parse_roman, validate_roman, roman_table\n")
		Writef(fs.Output(), "\nEnvironment:\n")
		Writef(fs.Output(), "  ROMANS_PARSE_STRICT          reject lowercase numerals in parse_roman\n")
		Writef(fs.Output(), "  ROMANS_VALIDATE_STRICT       report lowercase numerals as errors\n")
		Writef(fs.Output(), "  ROMANS_VALIDATE_NO_WARNINGS  omit warnings from validate_roman\n")
		Writef(fs.Output(), "  ROMANS_TABLE_LIMIT           default page size for roman_table\n")
		Writef(fs.Output(), "  ROMANS_MAX_LIMIT             upper bound on any page size\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	logger.Info("starting MCP server", "version", romans.Version(), "transport", "stdio")
	if err := runServer(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("MCP server stopped", "error", err)
		return fmt.Errorf("running MCP server: %w", err)
	}
	logger.Info("MCP server stopped")
	return nil
}
