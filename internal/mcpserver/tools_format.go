package mcpserver

import (
	"context"

	"github.com/erraggy/romans/roman"
	"github.com/erraggy/romans/romanerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type toRomanInput struct {
	Value *int `json:"value,omitempty" jsonschema:"The integer to convert (1 to 3999)"`
}

type toRomanOutput struct {
	Value   int    `json:"value"`
	Numeral string `json:"numeral"`
}

func handleToRoman(_ context.Context, _ *mcp.CallToolRequest, input toRomanInput) (*mcp.CallToolResult, toRomanOutput, error) {
	if input.Value == nil {
		return errResult(&romanerrors.InputError{Message: "value is required"}), toRomanOutput{}, nil
	}

	numeral, err := roman.ToRoman(*input.Value)
	if err != nil {
		return errResult(err), toRomanOutput{}, nil
	}
	return nil, toRomanOutput{Value: *input.Value, Numeral: numeral}, nil
}
