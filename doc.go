// Package romans converts between integers and Roman numerals.
//
// The library validates numeral text against the classical subtractive
// notation and formats integers in [1, 3999] into their canonical form.
//
// # Overview
//
// The module consists of these packages:
//
//   - roman: the symbol table, formatter, parser and validation reports
//   - romanerrors: structured error types for errors.Is and errors.As
//
// and a command-line tool, cmd/romans, which also serves the conversions
// as MCP tools over stdio.
//
// # Installation
//
//	go get github.com/erraggy/romans
//
// # Quick Start
//
// Format an integer:
//
//	import "github.com/erraggy/romans/roman"
//
//	s, err := roman.ToRoman(1990)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s) // MCMXC
//
// Parse a numeral:
//
//	n, err := roman.Parse("mmxiv")
//	if errors.Is(err, romanerrors.ErrInvalidNumeral) {
//		// reject input
//	}
//	fmt.Println(n) // 2014
//
// Validate without failing:
//
//	result := roman.Validate("IIII")
//	for _, issue := range result.Errors {
//		fmt.Println(issue)
//	}
//
// # Command Line
//
//	romans format 1954 1990
//	romans parse MCMLIV
//	romans validate --strict mcmxc
//	romans table --from 1 --to 20 --format yaml
//	romans mcp
package romans
