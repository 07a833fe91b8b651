package roman

import (
	"strings"

	"github.com/erraggy/romans/romanerrors"
)

// longestNumeral is the length of MMMDCCCLXXXVIII (3888).
const longestNumeral = 15

// ToRoman returns the canonical numeral for n.
// It fails with a *romanerrors.RangeError when n is outside [MinValue, MaxValue].
func ToRoman(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", &romanerrors.RangeError{Value: n, Min: MinValue, Max: MaxValue}
	}

	var sb strings.Builder
	sb.Grow(longestNumeral)
	for _, t := range terms {
		for n >= t.Value {
			sb.WriteString(t.Numeral)
			n -= t.Value
		}
	}
	return sb.String(), nil
}

// TryToRoman is ToRoman without the error: ok is false, and the numeral empty,
// when n has no Roman representation.
func TryToRoman(n int) (numeral string, ok bool) {
	numeral, err := ToRoman(n)
	return numeral, err == nil
}
