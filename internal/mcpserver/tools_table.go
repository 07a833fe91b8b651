package mcpserver

import (
	"context"

	"github.com/erraggy/romans/roman"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type romanTableInput struct {
	From   int `json:"from,omitempty"   jsonschema:"First integer of the range (default 1)"`
	To     int `json:"to,omitempty"     jsonschema:"Last integer of the range (default 3999)"`
	Offset int `json:"offset,omitempty" jsonschema:"Skip the first N rows (for pagination)"`
	Limit  int `json:"limit,omitempty"  jsonschema:"Maximum number of rows to return (default 100)"`
}

type romanTableRow struct {
	Value   int    `json:"value"`
	Numeral string `json:"numeral"`
}

type romanTableOutput struct {
	From     int             `json:"from"`
	To       int             `json:"to"`
	Total    int             `json:"total"`
	Returned int             `json:"returned"`
	Rows     []romanTableRow `json:"rows,omitempty"`
}

func handleRomanTable(_ context.Context, _ *mcp.CallToolRequest, input romanTableInput) (*mcp.CallToolResult, romanTableOutput, error) {
	from, to := input.From, input.To
	if from == 0 {
		from = roman.MinValue
	}
	if to == 0 {
		to = roman.MaxValue
	}

	conversions, err := roman.Table(from, to)
	if err != nil {
		return errResult(err), romanTableOutput{}, nil
	}

	page := paginate(conversions, input.Offset, input.Limit)
	output := romanTableOutput{
		From:     from,
		To:       to,
		Total:    len(conversions),
		Returned: len(page),
	}
	if len(page) > 0 {
		output.Rows = make([]romanTableRow, 0, len(page))
	}
	for _, c := range page {
		output.Rows = append(output.Rows, romanTableRow{Value: c.Value, Numeral: c.Numeral})
	}
	return nil, output, nil
}
