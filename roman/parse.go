package roman

import (
	"fmt"

	"github.com/erraggy/romans/internal/severity"
	"github.com/erraggy/romans/romanerrors"
)

// maxRun is the longest permitted run of one letter.
const maxRun = 3

// ParseResult contains a parsed numeral and anything noteworthy about its form.
type ParseResult struct {
	// Input is the text exactly as supplied
	Input string `json:"input" yaml:"input"`
	// Value is the integer the numeral denotes
	Value int `json:"value" yaml:"value"`
	// Canonical is the uppercase canonical spelling
	Canonical string `json:"canonical" yaml:"canonical"`
	// Warnings lists non-fatal findings, such as lowercase input
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Parse returns the integer denoted by text.
// It fails with a *romanerrors.NumeralError when text is not a valid numeral.
func Parse(text string) (int, error) {
	result, err := parseText(text, false)
	if err != nil {
		return 0, err
	}
	return result.Value, nil
}

// TryParse is Parse without the error: ok is false, and the value 0, when
// text is not a valid numeral.
func TryParse(text string) (value int, ok bool) {
	value, err := Parse(text)
	return value, err == nil
}

// ParseWithOptions parses the numeral from the configured input source.
//
// Example:
//
//	result, err := roman.ParseWithOptions(
//		roman.WithNullableText(req.Numeral),
//		roman.WithStrict(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	text, err := cfg.input()
	if err != nil {
		return nil, err
	}
	return parseText(text, cfg.strict)
}

// parseText runs every grammar check in order and stops at the first failure.
func parseText(text string, strict bool) (*ParseResult, error) {
	letters, lower, err := normalize(text)
	if err != nil {
		return nil, err
	}

	var value int
	if len(letters) == 1 {
		value = letters[0].Value()
	} else {
		if err := checkRuns(text, letters); err != nil {
			return nil, err
		}
		if value, err = sum(text, letters); err != nil {
			return nil, err
		}
	}

	canonical, err := canonicalize(text, letters, value)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{Input: text, Value: value, Canonical: canonical}
	if lower > 0 {
		caseIssue := Issue{
			Numeral:  text,
			Position: lower,
			Rule:     romanerrors.RuleCase,
			Message:  fmt.Sprintf("numeral is not uppercase; canonical form is %s", canonical),
			Severity: severity.SeverityWarning,
		}
		if strict {
			return nil, &romanerrors.NumeralError{
				Numeral:  text,
				Position: caseIssue.Position,
				Rule:     caseIssue.Rule,
				Message:  caseIssue.Message,
			}
		}
		result.Warnings = append(result.Warnings, caseIssue)
	}
	return result, nil
}

// normalize maps text to symbols. lower is the 1-based position of the first
// lowercase letter, or 0 when the text is all uppercase.
func normalize(text string) (letters []Symbol, lower int, err error) {
	if text == "" {
		return nil, 0, &romanerrors.NumeralError{
			Numeral: text,
			Rule:    romanerrors.RuleEmpty,
			Message: "numeral is empty",
		}
	}

	letters = make([]Symbol, 0, len(text))
	for _, r := range text {
		s, ok := LookupSymbol(r)
		if !ok {
			return nil, 0, &romanerrors.NumeralError{
				Numeral:  text,
				Position: len(letters) + 1,
				Rule:     romanerrors.RuleIllegalCharacter,
				Message:  fmt.Sprintf("illegal character %q", r),
			}
		}
		letters = append(letters, s)
		if lower == 0 && rune(s) != r {
			lower = len(letters)
		}
	}
	return letters, lower, nil
}

// checkRuns rejects any letter repeated more than maxRun times in a row.
func checkRuns(text string, letters []Symbol) error {
	run := 1
	for i := 1; i < len(letters); i++ {
		if letters[i] != letters[i-1] {
			run = 1
			continue
		}
		run++
		if run > maxRun {
			return &romanerrors.NumeralError{
				Numeral:  text,
				Position: i + 1,
				Rule:     romanerrors.RuleFourInARow,
				Message:  fmt.Sprintf("%s repeated more than %d times in a row", letters[i], maxRun),
			}
		}
	}
	return nil
}

// sum scans left to right, applying the grammar to each letter and its
// neighbours, and totals the signed contributions.
func sum(text string, letters []Symbol) (int, error) {
	total := 0
	prev := boundary
	for i, cur := range letters {
		next := boundary
		if i+1 < len(letters) {
			next = letters[i+1].slot()
		}

		act, reason := classify(cur.slot(), prev, next)
		switch act {
		case add:
			total += cur.Value()
		case subtract:
			total -= cur.Value()
		default:
			return 0, &romanerrors.NumeralError{
				Numeral:  text,
				Position: i + 1,
				Rule:     romanerrors.RuleAdjacency,
				Message:  reason,
			}
		}
		prev = cur.slot()
	}

	if total <= 0 {
		return 0, &romanerrors.NumeralError{
			Numeral: text,
			Rule:    romanerrors.RuleNonPositive,
			Message: fmt.Sprintf("letters sum to %d", total),
		}
	}
	return total, nil
}

// canonicalize confirms that the letters are exactly the canonical spelling of value.
func canonicalize(text string, letters []Symbol, value int) (string, error) {
	canonical, err := ToRoman(value)
	if err != nil {
		return "", &romanerrors.NumeralError{
			Numeral: text,
			Rule:    romanerrors.RuleNonCanonical,
			Message: fmt.Sprintf("letters denote %d", value),
			Cause:   err,
		}
	}
	if !spells(letters, canonical) {
		return "", &romanerrors.NumeralError{
			Numeral: text,
			Rule:    romanerrors.RuleNonCanonical,
			Message: fmt.Sprintf("letters denote %d, which is written %s", value, canonical),
		}
	}
	return canonical, nil
}

func spells(letters []Symbol, numeral string) bool {
	if len(letters) != len(numeral) {
		return false
	}
	for i, s := range letters {
		if byte(s) != numeral[i] {
			return false
		}
	}
	return true
}
