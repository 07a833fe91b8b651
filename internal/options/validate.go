// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/romans/romanerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// Zero sources yields an [romanerrors.InputError] carrying noSourceMsg, since a
// missing source is the same condition as an absent input. More than one
// yields a [romanerrors.ConfigError] carrying multiSourceMsg.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &romanerrors.InputError{Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &romanerrors.ConfigError{Option: "input", Value: sourceCount, Message: multiSourceMsg}
	}

	return nil
}
