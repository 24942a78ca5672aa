// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
)

var decimalOne = apd.New(1, 0)

// decimalOp is the shape of the apd.ErrDecimal binary methods.
type decimalOp func(ed *apd.ErrDecimal, d, x, y *apd.Decimal) *apd.Decimal

// mustCompute panics when an operation that cannot fail on admitted values
// did fail. Reaching it means a Vector was built around the constructors.
func mustCompute(method string, ed *apd.ErrDecimal) {
	if err := ed.Err(); err != nil {
		panic(fmt.Sprintf("vector: %s: decimal invariant violated: %v", method, err))
	}
}

// Plus returns v + w.
// Errors: ErrDimensionMismatch, ErrInvalidInput.
// Complexity: O(n).
func (v Vector) Plus(w Vector) (Vector, error) {
	out, err := v.elementwise(w, (*apd.ErrDecimal).Add)
	if err != nil {
		return Vector{}, vectorErrorf("Plus", err)
	}

	return out, nil
}

// Minus returns v - w.
// Errors: ErrDimensionMismatch, ErrInvalidInput.
// Complexity: O(n).
func (v Vector) Minus(w Vector) (Vector, error) {
	out, err := v.elementwise(w, (*apd.ErrDecimal).Sub)
	if err != nil {
		return Vector{}, vectorErrorf("Minus", err)
	}

	return out, nil
}

// elementwise applies op pairwise after the dimension check.
func (v Vector) elementwise(w Vector, op decimalOp) (Vector, error) {
	if err := validateSameDimension(v, w); err != nil {
		return Vector{}, err
	}
	ed := apd.MakeErrDecimal(numeric.Context)
	coords := make([]apd.Decimal, len(v.coords))
	for i := range coords {
		op(&ed, &coords[i], &v.coords[i], &w.coords[i])
	}
	if err := ed.Err(); err != nil {
		return Vector{}, err
	}

	return fromResults(coords)
}

// TimesScalar returns every coordinate of v multiplied by factor.
// Errors: ErrInvalidInput for a nil/non-finite factor or a zero-value v.
func (v Vector) TimesScalar(factor *apd.Decimal) (Vector, error) {
	f, err := numeric.ToDecimal(factor)
	if err != nil {
		return Vector{}, vectorErrorf("TimesScalar", fmt.Errorf("%w: factor: %w", ErrInvalidInput, err))
	}
	out, err := v.scaled(f)
	if err != nil {
		return Vector{}, vectorErrorf("TimesScalar", err)
	}

	return out, nil
}

// Scale is TimesScalar for a float64 factor.
func (v Vector) Scale(factor float64) (Vector, error) {
	f, err := numeric.ToDecimal(factor)
	if err != nil {
		return Vector{}, vectorErrorf("Scale", fmt.Errorf("%w: factor: %w", ErrInvalidInput, err))
	}
	out, err := v.scaled(f)
	if err != nil {
		return Vector{}, vectorErrorf("Scale", err)
	}

	return out, nil
}

func (v Vector) scaled(f *apd.Decimal) (Vector, error) {
	if len(v.coords) == 0 {
		return Vector{}, ErrInvalidInput
	}
	ed := apd.MakeErrDecimal(numeric.Context)
	coords := make([]apd.Decimal, len(v.coords))
	for i := range coords {
		ed.Mul(&coords[i], f, &v.coords[i])
	}
	if err := ed.Err(); err != nil {
		return Vector{}, err
	}

	return fromResults(coords)
}

// Magnitude returns the Euclidean norm √(Σ xᵢ²) at numeric.Precision digits.
// The zero-value Vector has magnitude 0.
// Complexity: O(n).
func (v Vector) Magnitude() *apd.Decimal {
	ed := apd.MakeErrDecimal(numeric.Context)
	sum := new(apd.Decimal)
	var sq apd.Decimal
	for i := range v.coords {
		ed.Mul(&sq, &v.coords[i], &v.coords[i])
		ed.Add(sum, sum, &sq)
	}
	ed.Sqrt(sum, sum)
	mustCompute("Magnitude", &ed)

	return sum
}

// Normalized returns the unit vector v/|v|.
// Errors: ErrZeroVector when |v| is exactly zero, ErrInvalidInput for a
// zero-value v.
func (v Vector) Normalized() (Vector, error) {
	out, err := v.normalized()
	if err != nil {
		return Vector{}, vectorErrorf("Normalized", err)
	}

	return out, nil
}

func (v Vector) normalized() (Vector, error) {
	if len(v.coords) == 0 {
		return Vector{}, ErrInvalidInput
	}
	mag := v.Magnitude()
	if mag.IsZero() {
		return Vector{}, ErrZeroVector
	}
	ed := apd.MakeErrDecimal(numeric.Context)
	inv := ed.Quo(new(apd.Decimal), decimalOne, mag)
	if err := ed.Err(); err != nil {
		return Vector{}, err
	}

	return v.scaled(inv)
}

// Dot returns Σ vᵢ·wᵢ.
// Errors: ErrDimensionMismatch, ErrInvalidInput.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (*apd.Decimal, error) {
	if err := validateSameDimension(v, w); err != nil {
		return nil, vectorErrorf("Dot", err)
	}

	return v.dot(w), nil
}

// dot assumes equal dimensions.
func (v Vector) dot(w Vector) *apd.Decimal {
	ed := apd.MakeErrDecimal(numeric.Context)
	sum := new(apd.Decimal)
	var p apd.Decimal
	for i := range v.coords {
		ed.Mul(&p, &v.coords[i], &w.coords[i])
		ed.Add(sum, sum, &p)
	}
	mustCompute("Dot", &ed)

	return sum
}
