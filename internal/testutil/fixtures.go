// Package testutil provides shared numeral fixtures for unit tests.
package testutil

// Pair is an integer with its canonical numeral.
type Pair struct {
	Value   int
	Numeral string
}

// Years holds well-known dates and their canonical numerals.
var Years = []Pair{
	{1666, "MDCLXVI"},
	{1776, "MDCCLXXVI"},
	{1893, "MDCCCXCIII"},
	{1954, "MCMLIV"},
	{1978, "MCMLXXVIII"},
	{1990, "MCMXC"},
	{1994, "MCMXCIV"},
	{2014, "MMXIV"},
	{2024, "MMXXIV"},
	{3888, "MMMDCCCLXXXVIII"},
	{3999, "MMMCMXCIX"},
}

// Malformed maps invalid numerals to the rule each one breaks.
var Malformed = map[string]string{
	"":     "empty",
	"IIII": "four-in-a-row",
	"MMMM": "four-in-a-row",
	"IIV":  "adjacency",
	"VX":   "adjacency",
	"IC":   "adjacency",
	"DM":   "adjacency",
	"XIZ":  "illegal-character",
	"I V":  "illegal-character",
	"IXI":  "non-canonical",
	"DCD":  "non-canonical",
}

// Lower returns numeral with its letters in lowercase.
func Lower(numeral string) string {
	out := []byte(numeral)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + 'a' - 'A'
		}
	}
	return string(out)
}
