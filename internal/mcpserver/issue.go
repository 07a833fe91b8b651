package mcpserver

import "github.com/erraggy/romans/roman"

// numeralIssue is the wire form of a roman.Issue.
type numeralIssue struct {
	Rule     string `json:"rule"`
	Position int    `json:"position,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func toNumeralIssues(in []roman.Issue) []numeralIssue {
	if len(in) == 0 {
		return nil
	}
	out := make([]numeralIssue, 0, len(in))
	for _, i := range in {
		out = append(out, numeralIssue{
			Rule:     string(i.Rule),
			Position: i.Position,
			Message:  i.Message,
			Severity: i.Severity.String(),
		})
	}
	return out
}
