package roman

import (
	"fmt"

	"github.com/erraggy/romans/romanerrors"
)

// Conversion pairs an integer with its canonical numeral.
type Conversion struct {
	Value   int    `json:"value" yaml:"value"`
	Numeral string `json:"numeral" yaml:"numeral"`
}

// Table formats every integer in [from, to].
// Both bounds must lie in [MinValue, MaxValue] and from must not exceed to.
func Table(from, to int) ([]Conversion, error) {
	for _, bound := range []int{from, to} {
		if bound < MinValue || bound > MaxValue {
			return nil, &romanerrors.RangeError{Value: bound, Min: MinValue, Max: MaxValue}
		}
	}
	if from > to {
		return nil, &romanerrors.ConfigError{
			Option:  "from",
			Value:   from,
			Message: fmt.Sprintf("must not exceed to (%d)", to),
		}
	}

	rows := make([]Conversion, 0, to-from+1)
	for n := from; n <= to; n++ {
		numeral, err := ToRoman(n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Conversion{Value: n, Numeral: numeral})
	}
	return rows, nil
}
