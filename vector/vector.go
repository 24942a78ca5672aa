// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
)

// displayPlaces is the number of decimal places used by String.
const displayPlaces = 3

// Vector is an immutable, ordered tuple of decimal coordinates.
// The zero value has dimension 0 and is rejected by every operation with
// ErrInvalidInput; build vectors with New, Of, FromDecimals or Zero.
type Vector struct {
	coords []apd.Decimal // never mutated after construction, len >= 1
}

// New builds a Vector from float64 coordinates, each read through its
// shortest decimal representation (8.218 is stored as exactly 8.218).
// Errors: ErrInvalidInput on empty input, NaN or ±Inf.
func New(coords ...float64) (Vector, error) {
	values := make([]any, len(coords))
	for i, c := range coords {
		values[i] = c
	}
	v, err := build(values)
	if err != nil {
		return Vector{}, vectorErrorf("New", err)
	}

	return v, nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(coords ...float64) Vector {
	v, err := New(coords...)
	if err != nil {
		panic(err)
	}

	return v
}

// Of builds a Vector from numeric-like values (any mix of Go integers,
// floats, decimal strings and *apd.Decimal; see numeric.ToDecimal).
// Errors: ErrInvalidInput on empty input or an unreadable element.
func Of(values ...any) (Vector, error) {
	v, err := build(values)
	if err != nil {
		return Vector{}, vectorErrorf("Of", err)
	}

	return v, nil
}

// FromDecimals builds a Vector from decimal coordinates. Inputs are copied.
func FromDecimals(coords ...*apd.Decimal) (Vector, error) {
	values := make([]any, len(coords))
	for i, c := range coords {
		values[i] = c
	}
	v, err := build(values)
	if err != nil {
		return Vector{}, vectorErrorf("FromDecimals", err)
	}

	return v, nil
}

// Zero returns the dim-dimensional zero vector.
func Zero(dim int) (Vector, error) {
	if dim < 1 {
		return Vector{}, vectorErrorf("Zero", fmt.Errorf("%w: dimension %d", ErrInvalidInput, dim))
	}

	return Vector{coords: make([]apd.Decimal, dim)}, nil
}

// build converts values into a fresh coordinate slice.
func build(values []any) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, fmt.Errorf("%w: coordinates must be nonempty", ErrInvalidInput)
	}
	coords := make([]apd.Decimal, len(values))
	for i, x := range values {
		d, err := numeric.ToDecimal(x)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: coordinate %d: %w", ErrInvalidInput, i, err)
		}
		coords[i].Set(d)
	}

	return Vector{coords: coords}, nil
}

// fromResults adopts coordinates computed by an operation. They are checked
// against the admitted magnitude range so derived vectors keep the same
// guarantees as constructed ones.
func fromResults(coords []apd.Decimal) (Vector, error) {
	for i := range coords {
		if err := numeric.Validate(&coords[i]); err != nil {
			return Vector{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
	}

	return Vector{coords: coords}, nil
}

// Dimension returns the number of coordinates.
// Complexity: O(1).
func (v Vector) Dimension() int {
	return len(v.coords)
}

// At returns a copy of the i-th coordinate.
// Errors: ErrIndexOutOfRange.
func (v Vector) At(i int) (*apd.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return nil, vectorErrorf("At", fmt.Errorf("%w: %d (dimension %d)", ErrIndexOutOfRange, i, len(v.coords)))
	}

	return new(apd.Decimal).Set(&v.coords[i]), nil
}

// Coordinates returns copies of all coordinates, in order.
func (v Vector) Coordinates() []*apd.Decimal {
	out := make([]*apd.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = new(apd.Decimal).Set(&v.coords[i])
	}

	return out
}

// Float64s returns the coordinates as float64 (nearest representable value).
func (v Vector) Float64s() []float64 {
	out := make([]float64, len(v.coords))
	for i := range v.coords {
		out[i] = numeric.Float64(&v.coords[i])
	}

	return out
}

// Equal reports whether v and w have the same dimension and numerically equal
// coordinates (1.0 equals 1).
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Cmp(&w.coords[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: coordinates rounded to three places,
// e.g. "[7.089, -7.230]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(numeric.FormatRounded(&v.coords[i], displayPlaces))
	}
	sb.WriteByte(']')

	return sb.String()
}
