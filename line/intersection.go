// SPDX-License-Identifier: MIT

package line

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector"
)

// Kind classifies the intersection of two lines.
type Kind int

const (
	// NoIntersection: the lines are parallel and distinct.
	NoIntersection Kind = iota

	// SinglePoint: the lines cross at Intersection.Point.
	SinglePoint

	// Coincident: the lines are the same; Intersection.Line holds the receiver.
	Coincident
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case SinglePoint:
		return "point"
	case Coincident:
		return "coincident"
	default:
		return "unknown"
	}
}

// Intersection is the outcome of IntersectionWith. Point is set only for
// SinglePoint and Line only for Coincident.
type Intersection struct {
	Kind  Kind
	Point vector.Vector
	Line  Line
}

// Exists reports whether the lines share at least one point.
func (in Intersection) Exists() bool {
	return in.Kind != NoIntersection
}

// IntersectionWith solves
//
//	A·x + B·y = k₁
//	C·x + D·y = k₂
//
// by Cramer's rule with Δ = AD − BC. When |Δ| is below numeric.DefaultEpsilon
// the lines are parallel: the result is Coincident (carrying l) if they are
// equal and NoIntersection otherwise. Otherwise the point is
//
//	((D·k₁ − B·k₂)/Δ, (−C·k₁ + A·k₂)/Δ)
//
// The only possible error is a numeric range error for a point too far away
// to be represented (ill-conditioned systems with huge coefficients).
func (l Line) IntersectionWith(other Line) (Intersection, error) {
	n1, n2 := l.normalOrZero().Coordinates(), other.normalOrZero().Coordinates()
	a, b := n1[0], n1[1]
	c, d := n2[0], n2[1]
	k1, k2 := l.constantOrZero(), other.constantOrZero()

	ed := apd.MakeErrDecimal(numeric.Context)
	var ad, bc, delta apd.Decimal
	ed.Mul(&ad, a, d)
	ed.Mul(&bc, b, c)
	ed.Sub(&delta, &ad, &bc)
	if err := ed.Err(); err != nil {
		return Intersection{}, lineErrorf("IntersectionWith", err)
	}

	if numeric.IsNearZero(&delta, numeric.DefaultEpsilon) {
		if l.Equal(other) {
			return Intersection{Kind: Coincident, Line: l}, nil
		}
		return Intersection{Kind: NoIntersection}, nil
	}

	var l1, r1, l2, r2 apd.Decimal
	x, y := new(apd.Decimal), new(apd.Decimal)
	ed.Mul(&l1, d, k1)
	ed.Mul(&r1, b, k2)
	ed.Sub(x, &l1, &r1)
	ed.Quo(x, x, &delta)
	ed.Mul(&l2, a, k2)
	ed.Mul(&r2, c, k1)
	ed.Sub(y, &l2, &r2)
	ed.Quo(y, y, &delta)
	if err := ed.Err(); err != nil {
		return Intersection{}, lineErrorf("IntersectionWith", err)
	}

	p, err := vector.FromDecimals(x, y)
	if err != nil {
		return Intersection{}, lineErrorf("IntersectionWith", err)
	}

	return Intersection{Kind: SinglePoint, Point: p}, nil
}
