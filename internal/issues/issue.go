// Package issues provides the issue record used by numeral validation reports.
package issues

import (
	"fmt"

	"github.com/erraggy/romans/internal/severity"
	"github.com/erraggy/romans/romanerrors"
)

// Issue represents a single problem found while validating a numeral.
type Issue struct {
	// Numeral is the input text exactly as supplied
	Numeral string `json:"numeral" yaml:"numeral"`
	// Position is the 1-based character position of the problem (0 if it concerns the whole numeral)
	Position int `json:"position,omitempty" yaml:"position,omitempty"`
	// Rule is the grammar rule involved
	Rule romanerrors.Rule `json:"rule" yaml:"rule"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
}

// FromError converts a numeral error into an error-severity issue.
func FromError(err *romanerrors.NumeralError) Issue {
	return Issue{
		Numeral:  err.Numeral,
		Position: err.Position,
		Rule:     err.Rule,
		Message:  err.Message,
		Severity: severity.SeverityError,
	}
}

// String returns a formatted string representation of the issue.
// Uses "✗" for errors and "⚠" for warnings.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "?"
	}

	return fmt.Sprintf("%s %s: %s [%s]", symbol, i.Location(), i.Message, i.Rule)
}

// Location returns "numeral:position", or just the quoted numeral when the
// issue has no position.
func (i Issue) Location() string {
	if i.Position == 0 {
		return fmt.Sprintf("%q", i.Numeral)
	}
	return fmt.Sprintf("%q:%d", i.Numeral, i.Position)
}

// HasPosition returns true if the issue points at a specific character.
func (i Issue) HasPosition() bool {
	return i.Position > 0
}
