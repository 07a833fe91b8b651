package roman

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/romans/internal/options"
	"github.com/erraggy/romans/romanerrors"
)

// Option is a function that configures a parse or validation operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse or validation operation
type parseConfig struct {
	// Input source (exactly one must be set)
	text      *string
	textSet   bool
	reader    io.Reader
	readerSet bool

	// Configuration options
	strict bool
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithText, WithNullableText, or WithReader)",
		"must specify exactly one input source",
		cfg.textSet, cfg.readerSet,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// input resolves the configured source to numeral text.
func (cfg *parseConfig) input() (string, error) {
	if cfg.textSet {
		if cfg.text == nil {
			return "", &romanerrors.InputError{Message: "numeral reference is nil"}
		}
		return *cfg.text, nil
	}

	if cfg.reader == nil {
		return "", &romanerrors.InputError{Message: "reader is nil"}
	}
	data, err := io.ReadAll(cfg.reader)
	if err != nil {
		return "", fmt.Errorf("roman: reading input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// WithText specifies the numeral text as the input source
func WithText(text string) Option {
	return func(cfg *parseConfig) error {
		cfg.text = &text
		cfg.textSet = true
		return nil
	}
}

// WithNullableText specifies a possibly nil numeral reference as the input source.
// A nil pointer fails with romanerrors.ErrNullInput rather than being treated as "".
func WithNullableText(text *string) Option {
	return func(cfg *parseConfig) error {
		cfg.text = text
		cfg.textSet = true
		return nil
	}
}

// WithReader reads the whole reader as the numeral text. Trailing line
// endings are removed; any other whitespace is part of the numeral.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		cfg.reader = r
		cfg.readerSet = true
		return nil
	}
}

// WithStrict rejects numerals that are not already uppercase.
// Default: false (lowercase input parses and is reported as a warning)
func WithStrict(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.strict = enabled
		return nil
	}
}
