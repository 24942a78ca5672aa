// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "vector: ". Methods wrap these sentinels with
// their own name through vectorErrorf; callers match with errors.Is.

var (
	// ErrInvalidInput indicates an empty coordinate list or a coordinate that
	// could not be read as a finite decimal.
	ErrInvalidInput = errors.New("vector: invalid coordinates")

	// ErrDimensionMismatch indicates a binary operation between vectors of
	// different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDimensionUnsupported indicates an operation that is only defined for
	// 2- and 3-dimensional vectors.
	ErrDimensionUnsupported = errors.New("vector: only defined for 2D and 3D vectors")

	// ErrZeroVector indicates that a direction was required from the zero vector.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrNoUniqueComponent indicates a projection onto a zero basis vector.
	ErrNoUniqueComponent = errors.New("vector: no unique component")

	// ErrIndexOutOfRange indicates a coordinate index outside [0, Dimension()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)

// Refinements. Each one matches both itself and its kind under errors.Is.
var (
	// ErrNoAngle is returned by AngleWith when either vector is zero.
	ErrNoAngle error = &refinedError{msg: "vector: cannot compute an angle with the zero vector", kind: ErrZeroVector}

	// ErrNoUniqueParallel is returned by ComponentParallelTo for a zero basis.
	ErrNoUniqueParallel error = &refinedError{msg: "vector: no unique parallel component", kind: ErrNoUniqueComponent}

	// ErrNoUniqueOrthogonal is returned by ComponentOrthogonalTo for a zero basis.
	ErrNoUniqueOrthogonal error = &refinedError{msg: "vector: no unique orthogonal component", kind: ErrNoUniqueComponent}
)

// refinedError is a sentinel that unwraps to the broader kind it refines.
type refinedError struct {
	msg  string
	kind error
}

func (e *refinedError) Error() string { return e.msg }
func (e *refinedError) Unwrap() error { return e.kind }

// vectorErrorf wraps err with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}
