package romanerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInputError(t *testing.T) {
	t.Run("Error message with message", func(t *testing.T) {
		err := &InputError{Message: "numeral reference is nil"}
		if err.Error() != "null input: numeral reference is nil" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &InputError{}
		if err.Error() != "null input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("errors.Is matches ErrNullInput only", func(t *testing.T) {
		var err error = &InputError{}
		if !errors.Is(err, ErrNullInput) {
			t.Error("errors.Is should match ErrNullInput")
		}
		if errors.Is(err, ErrInvalidNumeral) {
			t.Error("errors.Is should not match ErrInvalidNumeral")
		}
	})
}

func TestNumeralError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &NumeralError{
			Numeral:  "MCCM",
			Position: 2,
			Rule:     RuleAdjacency,
			Message:  "M may not follow C when C also follows it",
			Cause:    cause,
		}

		want := "'MCCM' is an invalid Roman numeral at position 2: M may not follow C when C also follows it: underlying error"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with numeral only", func(t *testing.T) {
		err := &NumeralError{Numeral: "IIII"}
		if err.Error() != "'IIII' is an invalid Roman numeral" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for empty numeral", func(t *testing.T) {
		err := &NumeralError{Rule: RuleEmpty, Message: "numeral is empty"}
		if err.Error() != "'' is an invalid Roman numeral: numeral is empty" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("errors.Is matches ErrInvalidNumeral", func(t *testing.T) {
		var err error = &NumeralError{Numeral: "VV"}
		if !errors.Is(err, ErrInvalidNumeral) {
			t.Error("errors.Is should match ErrInvalidNumeral")
		}
		if errors.Is(err, ErrOutOfRange) {
			t.Error("errors.Is should not match ErrOutOfRange")
		}
	})

	t.Run("errors.As extracts details through wrapping", func(t *testing.T) {
		err := fmt.Errorf("parsing row 3: %w", &NumeralError{Numeral: "XM", Position: 1, Rule: RuleAdjacency})
		var numErr *NumeralError
		if !errors.As(err, &numErr) {
			t.Fatal("errors.As should succeed")
		}
		if numErr.Rule != RuleAdjacency || numErr.Position != 1 {
			t.Errorf("unexpected details: %+v", numErr)
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &NumeralError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}

func TestRangeError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &RangeError{Value: 4000, Min: 1, Max: 3999}
		if err.Error() != "value 4000 out of range [1, 3999]" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for negative value", func(t *testing.T) {
		err := &RangeError{Value: -1, Min: 1, Max: 3999}
		if err.Error() != "value -1 out of range [1, 3999]" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("errors.Is matches ErrOutOfRange", func(t *testing.T) {
		var err error = &RangeError{}
		if !errors.Is(err, ErrOutOfRange) {
			t.Error("errors.Is should match ErrOutOfRange")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("errors.Is should not match ErrConfig")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &RangeError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "from",
			Value:   10,
			Message: "must not exceed to",
			Cause:   errors.New("bad bounds"),
		}
		want := "configuration error for from (value: 10): must not exceed to: bad bounds"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("errors.Is matches ErrConfig", func(t *testing.T) {
		var err error = &ConfigError{}
		if !errors.Is(err, ErrConfig) {
			t.Error("errors.Is should match ErrConfig")
		}
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNullInput, ErrInvalidNumeral, ErrOutOfRange, ErrConfig}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
