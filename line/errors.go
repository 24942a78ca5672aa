// SPDX-License-Identifier: MIT

package line

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension indicates a normal vector that is not 2-dimensional.
	ErrDimension = errors.New("line: normal vector must be 2-dimensional")

	// ErrInvalidConstant indicates a constant term that is not a finite,
	// admitted decimal.
	ErrInvalidConstant = errors.New("line: invalid constant term")
)

// lineErrorf wraps err with Line method context.
func lineErrorf(method string, err error) error {
	return fmt.Errorf("Line.%s: %w", method, err)
}
