package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYears(t *testing.T) {
	prev := 0
	for _, p := range Years {
		assert.Greater(t, p.Value, prev, "years must be strictly increasing")
		assert.Equal(t, strings.ToUpper(p.Numeral), p.Numeral, "%d: numeral must be uppercase", p.Value)
		assert.NotEmpty(t, p.Numeral)
		prev = p.Value
	}
}

func TestMalformed(t *testing.T) {
	rules := map[string]bool{
		"empty": true, "illegal-character": true, "four-in-a-row": true,
		"adjacency": true, "non-positive": true, "non-canonical": true,
	}
	for numeral, rule := range Malformed {
		assert.True(t, rules[rule], "%q: unknown rule %q", numeral, rule)
	}
}

func TestLower(t *testing.T) {
	assert.Equal(t, "mcmxciv", Lower("MCMXCIV"))
	assert.Equal(t, "", Lower(""))
	assert.Equal(t, "x1z", Lower("X1Z"))
}
