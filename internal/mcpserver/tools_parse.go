package mcpserver

import (
	"context"

	"github.com/erraggy/romans/roman"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseRomanInput struct {
	Numeral *string `json:"numeral,omitempty" jsonschema:"The Roman numeral to parse"`
	Strict  *bool   `json:"strict,omitempty"  jsonschema:"Reject numerals that are not uppercase"`
}

type parseRomanOutput struct {
	Input     string         `json:"input"`
	Value     int            `json:"value"`
	Canonical string         `json:"canonical"`
	Warnings  []numeralIssue `json:"warnings,omitempty"`
}

func handleParseRoman(_ context.Context, _ *mcp.CallToolRequest, input parseRomanInput) (*mcp.CallToolResult, parseRomanOutput, error) {
	result, err := roman.ParseWithOptions(
		roman.WithNullableText(input.Numeral),
		roman.WithStrict(boolOr(input.Strict, cfg.ParseStrict)),
	)
	if err != nil {
		return errResult(err), parseRomanOutput{}, nil
	}

	return nil, parseRomanOutput{
		Input:     result.Input,
		Value:     result.Value,
		Canonical: result.Canonical,
		Warnings:  toNumeralIssues(result.Warnings),
	}, nil
}
