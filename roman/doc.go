/*
Package roman converts between integers and Roman numerals.

The formatter turns an integer in [1, 3999] into its canonical numeral. The
parser turns numeral text back into an integer and rejects every string that
the formatter could not have produced.

# Quick Start

Format and parse:

	s, err := roman.ToRoman(1954) // "MCMLIV"
	n, err := roman.Parse("MMXIV") // 2014

Non-failing variants return a boolean instead of an error:

	if s, ok := roman.TryToRoman(n); ok {
		fmt.Println(s)
	}
	if n, ok := roman.TryParse(text); ok {
		fmt.Println(n)
	}

# Functional Options

ParseWithOptions and ValidateWithOptions take exactly one input source:

	result, err := roman.ParseWithOptions(
		roman.WithText("mcmxc"),
		roman.WithStrict(true),
	)

WithReader reads the numeral from an io.Reader, trimming trailing line
endings. WithNullableText accepts a *string; a nil pointer (or no source at all)
fails with [romanerrors.ErrNullInput], which is distinct from the empty string.

# Grammar

Parsing is case-insensitive and runs these checks in order:

  - the text is not empty
  - every character is one of I, V, X, L, C, D, M
  - no letter appears four or more times in a row
  - every letter is allowed between its neighbours (see below)
  - the signed sum is positive
  - the sum's canonical numeral spells the same letters

The neighbour rules decide whether each letter adds or subtracts its value:

	I  subtracts before V or X unless it follows I or V; adds before I or the end
	V  adds before I or the end
	X  subtracts before L or C unless it follows X; adds before X, V, I or the end
	L  adds before X, V, I or the end
	C  subtracts before D or M unless it follows C; adds before C, L, X, V, I or the end
	D  adds before C, L, X, V, I or the end
	M  follows nothing, M or C; never sits between two Cs; adds before anything

Every failure is a *[romanerrors.NumeralError] naming the violated rule and the
1-based position of the offending letter.

# Validation Reports

Validate returns a [ValidationResult] instead of an error. Lowercase input is
valid but reported as a warning; with WithStrict(true) it becomes an error.

# Concurrency

All functions are pure and safe for concurrent use.
*/
package roman
