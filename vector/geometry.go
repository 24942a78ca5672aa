// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
)

var (
	decimalTwo      = apd.New(2, 0)
	decimalMinusOne = apd.New(-1, 0)
	decimalZero     = apd.New(0, 0)
)

// Cross returns the cross product v × w. 2D operands are embedded into 3D
// with a zero z coordinate first, so the result is always 3-dimensional:
//
//	(y₁z₂ − y₂z₁, −(x₁z₂ − x₂z₁), x₁y₂ − x₂y₁)
//
// Errors: ErrDimensionMismatch, ErrDimensionUnsupported (dimension not 2 or 3).
func (v Vector) Cross(w Vector) (Vector, error) {
	if err := validatePlanarOrSpatial(v, w); err != nil {
		return Vector{}, vectorErrorf("Cross", err)
	}
	a, b := v.embed3(), w.embed3()

	ed := apd.MakeErrDecimal(numeric.Context)
	coords := make([]apd.Decimal, 3)
	var l, r apd.Decimal
	ed.Mul(&l, a[1], b[2])
	ed.Mul(&r, b[1], a[2])
	ed.Sub(&coords[0], &l, &r)
	ed.Mul(&l, a[0], b[2])
	ed.Mul(&r, b[0], a[2])
	ed.Sub(&coords[1], &r, &l)
	ed.Mul(&l, a[0], b[1])
	ed.Mul(&r, b[0], a[1])
	ed.Sub(&coords[2], &l, &r)
	if err := ed.Err(); err != nil {
		return Vector{}, vectorErrorf("Cross", err)
	}
	out, err := fromResults(coords)
	if err != nil {
		return Vector{}, vectorErrorf("Cross", err)
	}

	return out, nil
}

// embed3 returns the coordinates of a 2D or 3D vector as three decimals.
func (v Vector) embed3() [3]*apd.Decimal {
	out := [3]*apd.Decimal{decimalZero, decimalZero, decimalZero}
	for i := range v.coords {
		out[i] = &v.coords[i]
	}

	return out
}

// AreaOfParallelogramWith returns |v × w|.
// Errors: as Cross.
func (v Vector) AreaOfParallelogramWith(w Vector) (*apd.Decimal, error) {
	c, err := v.Cross(w)
	if err != nil {
		return nil, err
	}

	return c.Magnitude(), nil
}

// AreaOfTriangleWith returns |v × w| / 2.
// Errors: as Cross.
func (v Vector) AreaOfTriangleWith(w Vector) (*apd.Decimal, error) {
	area, err := v.AreaOfParallelogramWith(w)
	if err != nil {
		return nil, err
	}
	ed := apd.MakeErrDecimal(numeric.Context)
	ed.Quo(area, area, decimalTwo)
	mustCompute("AreaOfTriangleWith", &ed)

	return area, nil
}

// IsZero reports whether |v| is below the tolerance (DefaultTolerance unless
// WithTolerance is given). An exactly zero vector is zero under any tolerance.
func (v Vector) IsZero(opts ...Option) bool {
	return v.isZero(gatherOptions(opts...).tolerance)
}

func (v Vector) isZero(tol float64) bool {
	mag := v.Magnitude()

	return mag.IsZero() || numeric.IsNearZero(mag, tol)
}

// IsOrthogonalTo reports whether |v·w| is below the tolerance.
// Errors: ErrDimensionMismatch, ErrInvalidInput.
func (v Vector) IsOrthogonalTo(w Vector, opts ...Option) (bool, error) {
	if err := validateSameDimension(v, w); err != nil {
		return false, vectorErrorf("IsOrthogonalTo", err)
	}
	o := gatherOptions(opts...)

	return numeric.IsNearZero(v.dot(w), o.tolerance), nil
}

// AngleWith returns the angle between v and w as arccos(v̂·ŵ). The cosine is
// clamped to [-1, 1] against rounding drift ([0, 1] under WithLegacyClamp).
// The result is in radians unless InDegrees is given.
// Errors: ErrNoAngle (matches ErrZeroVector) if either vector is zero,
// ErrDimensionMismatch, ErrInvalidInput.
func (v Vector) AngleWith(w Vector, opts ...Option) (float64, error) {
	if err := validateSameDimension(v, w); err != nil {
		return 0, vectorErrorf("AngleWith", err)
	}
	o := gatherOptions(opts...)
	cos, err := v.cosineWith(w)
	if err != nil {
		return 0, vectorErrorf("AngleWith", err)
	}
	lower := decimalMinusOne
	if o.legacyClamp {
		lower = decimalZero
	}
	angle := clampedArccos(cos, lower)
	if o.inDegrees {
		angle *= 180 / math.Pi
	}

	return angle, nil
}

// cosineWith returns v̂·ŵ; both vectors must share a dimension.
func (v Vector) cosineWith(w Vector) (*apd.Decimal, error) {
	nv, err := v.normalized()
	if err != nil {
		if errors.Is(err, ErrZeroVector) {
			return nil, ErrNoAngle
		}
		return nil, err
	}
	nw, err := w.normalized()
	if err != nil {
		if errors.Is(err, ErrZeroVector) {
			return nil, ErrNoAngle
		}
		return nil, err
	}

	return nv.dot(nw), nil
}

// clampedArccos clamps cos into [lower, 1] and returns its arccos in radians.
func clampedArccos(cos, lower *apd.Decimal) float64 {
	c := cos
	if c.Cmp(decimalOne) > 0 {
		c = decimalOne
	}
	if c.Cmp(lower) < 0 {
		c = lower
	}

	return math.Acos(numeric.Float64(c))
}

// IsParallelTo reports whether v and w point along the same line: true when
// either is zero (see IsZero) or when the angle between them is within the
// angle tolerance of 0 or π (DefaultAngleTolerance unless WithAngleTolerance
// is given).
// Errors: ErrDimensionMismatch, ErrInvalidInput.
func (v Vector) IsParallelTo(w Vector, opts ...Option) (bool, error) {
	if err := validateSameDimension(v, w); err != nil {
		return false, vectorErrorf("IsParallelTo", err)
	}
	o := gatherOptions(opts...)
	if v.isZero(o.tolerance) || w.isZero(o.tolerance) {
		return true, nil
	}
	cos, err := v.cosineWith(w)
	if err != nil {
		return false, vectorErrorf("IsParallelTo", err)
	}
	angle := clampedArccos(cos, decimalMinusOne)

	return angle <= o.angleTolerance || math.Pi-angle <= o.angleTolerance, nil
}

// ComponentParallelTo returns the projection of v onto the direction of
// basis: (v·û)û with û = basis/|basis|.
// Errors: ErrNoUniqueParallel (matches ErrNoUniqueComponent) for a zero
// basis, ErrDimensionMismatch, ErrInvalidInput.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	p, err := v.componentParallelTo(basis)
	if err != nil {
		if errors.Is(err, ErrZeroVector) {
			err = ErrNoUniqueParallel
		}
		return Vector{}, vectorErrorf("ComponentParallelTo", err)
	}

	return p, nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis, so that
// ComponentParallelTo(basis) + ComponentOrthogonalTo(basis) == v.
// Errors: ErrNoUniqueOrthogonal (matches ErrNoUniqueComponent) for a zero
// basis, ErrDimensionMismatch, ErrInvalidInput.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	p, err := v.componentParallelTo(basis)
	if err != nil {
		if errors.Is(err, ErrZeroVector) {
			err = ErrNoUniqueOrthogonal
		}
		return Vector{}, vectorErrorf("ComponentOrthogonalTo", err)
	}
	out, err := v.elementwise(p, (*apd.ErrDecimal).Sub)
	if err != nil {
		return Vector{}, vectorErrorf("ComponentOrthogonalTo", err)
	}

	return out, nil
}

func (v Vector) componentParallelTo(basis Vector) (Vector, error) {
	if err := validateSameDimension(v, basis); err != nil {
		return Vector{}, err
	}
	u, err := basis.normalized()
	if err != nil {
		return Vector{}, err
	}

	return u.scaled(u.dot(v))
}
