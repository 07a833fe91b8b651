// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes Roman numeral conversion as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/romans"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `romans MCP server: converts integers (1-3999) to canonical Roman numerals and parses numerals back, rejecting malformed ones.

Configuration: defaults are set via ROMANS_* environment variables in your MCP client config.

Key settings:
- ROMANS_PARSE_STRICT (default: false): reject lowercase numerals in parse_roman
- ROMANS_VALIDATE_STRICT (default: false): report lowercase numerals as errors in validate_roman
- ROMANS_VALIDATE_NO_WARNINGS (default: false): omit warnings from validate_roman
- ROMANS_TABLE_LIMIT (default: 100): default page size for roman_table
- ROMANS_MAX_LIMIT (default: 1000): upper bound on any requested page size`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "romans", Version: romans.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "to_roman",
		Description: "Convert an integer between 1 and 3999 to its canonical Roman numeral. Values outside that range are rejected.",
	}, handleToRoman)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_roman",
		Description: "Parse a Roman numeral into an integer. Letters are case-insensitive unless strict is set (default configurable via ROMANS_PARSE_STRICT). Only canonical numerals are accepted: IIII, IIV, VX and IXI are all rejected with the violated rule and position.",
	}, handleParseRoman)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_roman",
		Description: "Check a Roman numeral without failing. Returns valid, the value and canonical form when valid, and errors/warnings naming the violated rule (empty, illegal-character, four-in-a-row, adjacency, non-positive, non-canonical, case) and 1-based position.",
	}, handleValidateRoman)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "roman_table",
		Description: "List integers with their Roman numerals over a range (default 1 to 3999). Use offset/limit to page through results; the default limit is configurable via ROMANS_TABLE_LIMIT.",
	}, handleRomanTable)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.TableLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.TableLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// boolOr returns *p, or fallback when the field was omitted.
func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
