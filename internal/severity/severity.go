// Package severity provides severity level constants for issues reported
// while validating Roman numerals.
//
// The levels are ordered from least to most severe: Warning < Error.
package severity

// Severity indicates how serious a validation issue is.
type Severity int

const (
	// SeverityError marks a violation that makes the numeral invalid.
	SeverityError Severity = iota

	// SeverityWarning marks input that parses but is not in canonical form,
	// such as lowercase letters.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name so JSON and YAML output stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
