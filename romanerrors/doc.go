// Package romanerrors provides structured error types for the romans library.
//
// Import path: github.com/erraggy/romans/romanerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish a missing input from a malformed numeral or an
// integer that has no Roman representation.
//
// # Error Types
//
// The package provides four error types:
//
//   - [InputError]: the input reference itself is absent
//   - [NumeralError]: the numeral text violates the numeral grammar
//   - [RangeError]: an integer lies outside [1, 3999]
//   - [ConfigError]: invalid options or conflicting input sources
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrNullInput]: Matches any [InputError]
//   - [ErrInvalidNumeral]: Matches any [NumeralError]
//   - [ErrOutOfRange]: Matches any [RangeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	n, err := roman.Parse("IIII")
//	if errors.Is(err, romanerrors.ErrInvalidNumeral) {
//	    // Handle malformed numeral
//	}
//
// Extract error details with errors.As():
//
//	var numErr *romanerrors.NumeralError
//	if errors.As(err, &numErr) {
//	    fmt.Printf("rule %s failed at position %d\n", numErr.Rule, numErr.Position)
//	}
package romanerrors
