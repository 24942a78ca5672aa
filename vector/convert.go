// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/twpayne/go-geom"
)

// Conversions to and from float64 geometry types. Decimal → float64 rounds
// to the nearest representable value; float64 → decimal goes through the
// shortest representation, so FromVec2(v.Vec2()) reproduces v whenever its
// coordinates have at most ~15 significant digits.

// FromVec2 builds a 2D Vector from an mgl64.Vec2.
func FromVec2(v mgl64.Vec2) (Vector, error) {
	out, err := New(v[0], v[1])
	if err != nil {
		return Vector{}, vectorErrorf("FromVec2", err)
	}

	return out, nil
}

// FromVec3 builds a 3D Vector from an mgl64.Vec3.
func FromVec3(v mgl64.Vec3) (Vector, error) {
	out, err := New(v[0], v[1], v[2])
	if err != nil {
		return Vector{}, vectorErrorf("FromVec3", err)
	}

	return out, nil
}

// Vec2 converts a 2D Vector to mgl64.Vec2.
// Errors: ErrDimensionUnsupported for any other dimension.
func (v Vector) Vec2() (mgl64.Vec2, error) {
	if v.Dimension() != 2 {
		return mgl64.Vec2{}, vectorErrorf("Vec2", fmt.Errorf("%w: got %dD", ErrDimensionUnsupported, v.Dimension()))
	}
	f := v.Float64s()

	return mgl64.Vec2{f[0], f[1]}, nil
}

// Vec3 converts a 3D Vector to mgl64.Vec3. A 2D Vector is embedded with z = 0,
// the same embedding Cross uses.
// Errors: ErrDimensionUnsupported for any other dimension.
func (v Vector) Vec3() (mgl64.Vec3, error) {
	switch v.Dimension() {
	case 2:
		f := v.Float64s()
		return mgl64.Vec3{f[0], f[1], 0}, nil
	case 3:
		f := v.Float64s()
		return mgl64.Vec3{f[0], f[1], f[2]}, nil
	default:
		return mgl64.Vec3{}, vectorErrorf("Vec3", fmt.Errorf("%w: got %dD", ErrDimensionUnsupported, v.Dimension()))
	}
}

// FromCoord builds a Vector from a go-geom coordinate of any length ≥ 1.
func FromCoord(c geom.Coord) (Vector, error) {
	out, err := New(c...)
	if err != nil {
		return Vector{}, vectorErrorf("FromCoord", err)
	}

	return out, nil
}

// Coord returns v as a go-geom coordinate.
func (v Vector) Coord() geom.Coord {
	return geom.Coord(v.Float64s())
}

// Point returns v as a go-geom point: XY for 2D, XYZ for 3D.
// Errors: ErrDimensionUnsupported for any other dimension.
func (v Vector) Point() (*geom.Point, error) {
	switch v.Dimension() {
	case 2:
		return geom.NewPointFlat(geom.XY, v.Float64s()), nil
	case 3:
		return geom.NewPointFlat(geom.XYZ, v.Float64s()), nil
	default:
		return nil, vectorErrorf("Point", fmt.Errorf("%w: got %dD", ErrDimensionUnsupported, v.Dimension()))
	}
}
