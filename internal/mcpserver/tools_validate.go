package mcpserver

import (
	"context"

	"github.com/erraggy/romans/roman"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateRomanInput struct {
	Numeral    *string `json:"numeral,omitempty"     jsonschema:"The Roman numeral to check"`
	Strict     *bool   `json:"strict,omitempty"      jsonschema:"Report lowercase letters as an error instead of a warning"`
	NoWarnings *bool   `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
}

type validateRomanOutput struct {
	Valid        bool           `json:"valid"`
	Value        int            `json:"value,omitempty"`
	Canonical    string         `json:"canonical,omitempty"`
	ErrorCount   int            `json:"error_count"`
	WarningCount int            `json:"warning_count"`
	Errors       []numeralIssue `json:"errors,omitempty"`
	Warnings     []numeralIssue `json:"warnings,omitempty"`
}

func handleValidateRoman(_ context.Context, _ *mcp.CallToolRequest, input validateRomanInput) (*mcp.CallToolResult, validateRomanOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := boolOr(input.Strict, cfg.ValidateStrict)
	noWarnings := boolOr(input.NoWarnings, cfg.ValidateNoWarnings)

	result, err := roman.ValidateWithOptions(
		roman.WithNullableText(input.Numeral),
		roman.WithStrict(strict),
	)
	if err != nil {
		return errResult(err), validateRomanOutput{}, nil
	}

	output := validateRomanOutput{
		Valid:      result.Valid,
		Value:      result.Value,
		Canonical:  result.Canonical,
		ErrorCount: result.ErrorCount,
		Errors:     toNumeralIssues(result.Errors),
	}
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = toNumeralIssues(result.Warnings)
	}
	return nil, output, nil
}
