package roman

import (
	"errors"

	"github.com/erraggy/romans/internal/issues"
	"github.com/erraggy/romans/internal/severity"
	"github.com/erraggy/romans/romanerrors"
)

// Severity indicates how serious an issue is.
type Severity = severity.Severity

const (
	// SeverityError marks a violation that makes the numeral invalid.
	SeverityError = severity.SeverityError
	// SeverityWarning marks valid input that is not in canonical form.
	SeverityWarning = severity.SeverityWarning
)

// Issue is a single finding in a validation report.
type Issue = issues.Issue

// ValidationResult reports whether a numeral is valid and why not.
type ValidationResult struct {
	// Input is the text exactly as supplied
	Input string `json:"input" yaml:"input"`
	// Valid is true when the numeral parsed without errors
	Valid bool `json:"valid" yaml:"valid"`
	// Value is the parsed integer (0 when invalid)
	Value int `json:"value,omitempty" yaml:"value,omitempty"`
	// Canonical is the canonical spelling (empty when invalid)
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	// Errors contains the violation that made the numeral invalid
	Errors []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Warnings contains non-fatal findings
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// ErrorCount is the number of errors
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the number of warnings
	WarningCount int `json:"warning_count" yaml:"warning_count"`
}

// Validate reports on text without failing. Lowercase input is a warning.
func Validate(text string) *ValidationResult {
	return validate(text, false)
}

// ValidateWithOptions reports on the numeral from the configured input source.
// Grammar violations are returned in the result; the error is reserved for
// a missing input, conflicting options, or a failed reader.
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	text, err := cfg.input()
	if err != nil {
		return nil, err
	}
	return validate(text, cfg.strict), nil
}

func validate(text string, strict bool) *ValidationResult {
	result := &ValidationResult{Input: text}

	parsed, err := parseText(text, strict)
	if err != nil {
		var numErr *romanerrors.NumeralError
		if errors.As(err, &numErr) {
			result.Errors = []Issue{issues.FromError(numErr)}
		} else {
			result.Errors = []Issue{{
				Numeral:  text,
				Message:  err.Error(),
				Severity: severity.SeverityError,
			}}
		}
		result.ErrorCount = len(result.Errors)
		return result
	}

	result.Valid = true
	result.Value = parsed.Value
	result.Canonical = parsed.Canonical
	result.Warnings = parsed.Warnings
	result.WarningCount = len(parsed.Warnings)
	return result
}
