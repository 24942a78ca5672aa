// SPDX-License-Identifier: MIT

package vector

import "fmt"

// validateSameDimension ensures both operands are constructed vectors of
// equal dimension. Returns plain (unwrapped by method) errors; callers add
// the method tag.
func validateSameDimension(v, w Vector) error {
	if v.Dimension() == 0 || w.Dimension() == 0 {
		return ErrInvalidInput
	}
	if v.Dimension() != w.Dimension() {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, v.Dimension(), w.Dimension())
	}

	return nil
}

// validatePlanarOrSpatial ensures both operands share dimension 2 or 3.
func validatePlanarOrSpatial(v, w Vector) error {
	if err := validateSameDimension(v, w); err != nil {
		return err
	}
	if d := v.Dimension(); d != 2 && d != 3 {
		return fmt.Errorf("%w: got %dD", ErrDimensionUnsupported, d)
	}

	return nil
}
