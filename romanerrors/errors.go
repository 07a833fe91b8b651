package romanerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNullInput indicates the input reference was absent.
	ErrNullInput = errors.New("null input")

	// ErrInvalidNumeral indicates the text is not a valid Roman numeral.
	ErrInvalidNumeral = errors.New("invalid roman numeral")

	// ErrOutOfRange indicates an integer outside the representable range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Rule identifies the grammar rule a numeral violated.
type Rule string

const (
	// RuleEmpty is reported for an empty numeral.
	RuleEmpty Rule = "empty"
	// RuleIllegalCharacter is reported for a character outside I, V, X, L, C, D, M.
	RuleIllegalCharacter Rule = "illegal-character"
	// RuleFourInARow is reported when one letter appears four or more times consecutively.
	RuleFourInARow Rule = "four-in-a-row"
	// RuleAdjacency is reported when a letter may not appear between its neighbours.
	RuleAdjacency Rule = "adjacency"
	// RuleNonPositive is reported when the signed letter values do not sum above zero.
	RuleNonPositive Rule = "non-positive"
	// RuleNonCanonical is reported when the letters are well formed but spell
	// a value whose canonical numeral is different.
	RuleNonCanonical Rule = "non-canonical"
	// RuleCase is reported for lowercase letters when strict parsing is enabled.
	RuleCase Rule = "case"
)

// InputError represents an absent input: a nil reference or no input source at all.
type InputError struct {
	// Message describes what was missing
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "null input"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrNullInput
}

// NumeralError represents text that is not a valid Roman numeral.
type NumeralError struct {
	// Numeral is the input exactly as the caller supplied it
	Numeral string
	// Position is the 1-based character position of the offending letter (0 if not applicable)
	Position int
	// Rule is the grammar rule that was violated
	Rule Rule
	// Message describes the violation
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *NumeralError) Error() string {
	msg := fmt.Sprintf("'%s' is an invalid Roman numeral", e.Numeral)
	if e.Position > 0 {
		msg += fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NumeralError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NumeralError) Is(target error) bool {
	return target == ErrInvalidNumeral
}

// RangeError represents an integer with no Roman numeral representation.
type RangeError struct {
	// Value is the rejected integer
	Value int
	// Min is the smallest accepted value
	Min int
	// Max is the largest accepted value
	Max int
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RangeError) Error() string {
	msg := fmt.Sprintf("value %d out of range [%d, %d]", e.Value, e.Min, e.Max)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RangeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options and conflicting input sources.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
