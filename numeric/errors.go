// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber is returned when a value cannot be read as a finite decimal
	// (unsupported Go type, malformed string, NaN or ±Inf).
	ErrInvalidNumber = errors.New("numeric: invalid number")

	// ErrExponentRange is returned when a finite value lies outside the admitted
	// magnitude range (adjusted exponent beyond ±MaxMagnitudeExponent).
	ErrExponentRange = errors.New("numeric: exponent out of range")
)

// convertErrorf tags a conversion failure with the offending value.
func convertErrorf(v any, err error) error {
	return fmt.Errorf("numeric: %v (%T): %w", v, v, err)
}
