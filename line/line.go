// SPDX-License-Identifier: MIT

package line

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector"
)

// Dimension is the dimension of every Line.
const Dimension = 2

// Line is the set of points x with normal·x = constant. Immutable.
type Line struct {
	normal    vector.Vector
	constant  *apd.Decimal // never nil after New
	basepoint vector.Vector
	hasBase   bool
}

// New builds a line from its normal vector and constant term.
// A zero-value normal stands for the 2D zero vector and a nil constant for
// zero. The basepoint is derived here; a near-zero normal leaves it absent
// without error.
// Errors: ErrDimension, ErrInvalidConstant, or a vector/numeric range error
// if the basepoint cannot be represented.
func New(normal vector.Vector, constant *apd.Decimal) (Line, error) {
	if normal.Dimension() == 0 {
		normal, _ = vector.Zero(Dimension)
	}
	if normal.Dimension() != Dimension {
		return Line{}, lineErrorf("New", fmt.Errorf("%w: got %dD", ErrDimension, normal.Dimension()))
	}
	k := new(apd.Decimal)
	if constant != nil {
		var err error
		if k, err = numeric.ToDecimal(constant); err != nil {
			return Line{}, lineErrorf("New", fmt.Errorf("%w: %w", ErrInvalidConstant, err))
		}
	}

	l := Line{normal: normal, constant: k}
	if err := l.setBasepoint(); err != nil {
		return Line{}, lineErrorf("New", err)
	}

	return l, nil
}

// NewFromFloats builds the line a·x₁ + b·x₂ = k.
func NewFromFloats(a, b, k float64) (Line, error) {
	n, err := vector.New(a, b)
	if err != nil {
		return Line{}, lineErrorf("NewFromFloats", err)
	}
	c, err := numeric.ToDecimal(k)
	if err != nil {
		return Line{}, lineErrorf("NewFromFloats", fmt.Errorf("%w: %w", ErrInvalidConstant, err))
	}

	return New(n, c)
}

// MustNew is like NewFromFloats but panics on error. Intended for literals.
func MustNew(a, b, k float64) Line {
	l, err := NewFromFloats(a, b, k)
	if err != nil {
		panic(err)
	}

	return l
}

// setBasepoint places constant/nᵢ at the first non-zero index i of the normal.
func (l *Line) setBasepoint() error {
	i, ok := FirstNonZeroIndex(l.normal)
	if !ok {
		return nil
	}
	ni, _ := l.normal.At(i)

	coords := make([]*apd.Decimal, Dimension)
	for j := range coords {
		coords[j] = new(apd.Decimal)
	}
	if _, err := numeric.Context.Quo(coords[i], l.constant, ni); err != nil {
		return err
	}
	bp, err := vector.FromDecimals(coords...)
	if err != nil {
		return err
	}
	l.basepoint, l.hasBase = bp, true

	return nil
}

// FirstNonZeroIndex returns the index of the first coordinate of v whose
// magnitude is at least numeric.DefaultEpsilon, and false if there is none.
func FirstNonZeroIndex(v vector.Vector) (int, bool) {
	for i, c := range v.Coordinates() {
		if !numeric.IsNearZero(c, numeric.DefaultEpsilon) {
			return i, true
		}
	}

	return -1, false
}

// NormalVector returns the normal vector.
func (l Line) NormalVector() vector.Vector {
	return l.normal
}

// ConstantTerm returns a copy of the constant term.
func (l Line) ConstantTerm() *apd.Decimal {
	if l.constant == nil {
		return new(apd.Decimal)
	}

	return new(apd.Decimal).Set(l.constant)
}

// Basepoint returns a point on the line, or false for a degenerate line.
func (l Line) Basepoint() (vector.Vector, bool) {
	return l.basepoint, l.hasBase
}

// IsDegenerate reports whether the normal vector is near zero, i.e. the
// equation does not describe a line and there is no basepoint.
func (l Line) IsDegenerate() bool {
	return !l.hasBase
}

// IsParallelTo reports whether the normal vectors are parallel (see
// vector.Vector.IsParallelTo). A degenerate line is parallel to every line.
func (l Line) IsParallelTo(other Line) bool {
	ok, err := l.normalOrZero().IsParallelTo(other.normalOrZero())

	return err == nil && ok
}

// Equal reports whether l and other describe the same set of points:
//   - both degenerate and their constants differ by less than numeric.DefaultEpsilon, or
//   - neither degenerate, parallel, and the segment between their basepoints
//     is orthogonal to the normal vector.
func (l Line) Equal(other Line) bool {
	if l.IsDegenerate() || other.IsDegenerate() {
		if !l.IsDegenerate() || !other.IsDegenerate() {
			return false
		}
		var diff apd.Decimal
		if _, err := numeric.Context.Sub(&diff, l.constantOrZero(), other.constantOrZero()); err != nil {
			return false
		}
		return numeric.IsNearZero(&diff, numeric.DefaultEpsilon)
	}
	if !l.IsParallelTo(other) {
		return false
	}
	offset, err := l.basepoint.Minus(other.basepoint)
	if err != nil {
		return false
	}
	ok, err := offset.IsOrthogonalTo(l.normal)

	return err == nil && ok
}

// normalOrZero guards the zero-value Line.
func (l Line) normalOrZero() vector.Vector {
	if l.normal.Dimension() == 0 {
		z, _ := vector.Zero(Dimension)
		return z
	}

	return l.normal
}

func (l Line) constantOrZero() *apd.Decimal {
	if l.constant == nil {
		return new(apd.Decimal)
	}

	return l.constant
}
