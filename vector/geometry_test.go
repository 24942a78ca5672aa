// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCross(t *testing.T) {
	t.Parallel()

	c, err := mustVec(t, 8.462, 7.893, -8.187).Cross(mustVec(t, 6.984, -5.975, 4.778))
	require.NoError(t, err)
	assert.True(t, c.Equal(mustVec(t, -11.204571, -97.609444, -105.685162)), "got %v", c.Coordinates())

	// 2D operands are embedded with z = 0.
	c, err = mustVec(t, 1, 2).Cross(mustVec(t, 3, 4))
	require.NoError(t, err)
	assert.True(t, c.Equal(mustVec(t, 0, 0, -2)))
}

func TestCross_Dimensions(t *testing.T) {
	t.Parallel()

	_, err := mustVec(t, 1, 2, 3, 4).Cross(mustVec(t, 4, 3, 2, 1))
	assert.ErrorIs(t, err, vector.ErrDimensionUnsupported)
	_, err = mustVec(t, 1).Cross(mustVec(t, 2))
	assert.ErrorIs(t, err, vector.ErrDimensionUnsupported)
	_, err = mustVec(t, 1, 2).Cross(mustVec(t, 1, 2, 3))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = mustVec(t, 1, 2, 3, 4).AreaOfTriangleWith(mustVec(t, 4, 3, 2, 1))
	assert.ErrorIs(t, err, vector.ErrDimensionUnsupported)
}

func TestCross_AntiCommutes(t *testing.T) {
	t.Parallel()

	pairs := [][2]vector.Vector{
		{mustVec(t, 8.462, 7.893, -8.187), mustVec(t, 6.984, -5.975, 4.778)},
		{mustVec(t, -8.987, -9.838, 5.031), mustVec(t, -4.268, -1.861, -8.866)},
		{mustVec(t, 1.5, 9.547, 3.691), mustVec(t, -6.007, 0.124, 5.772)},
	}
	for _, p := range pairs {
		vw, err := p[0].Cross(p[1])
		require.NoError(t, err)
		wv, err := p[1].Cross(p[0])
		require.NoError(t, err)
		negWV, err := wv.Scale(-1)
		require.NoError(t, err)
		assert.True(t, vw.Equal(negWV), "v×w = -(w×v)")

		// v×w is orthogonal to both operands.
		for _, x := range p {
			ok, err := vw.IsOrthogonalTo(x, vector.WithTolerance(1e-20))
			require.NoError(t, err)
			assert.True(t, ok)
		}
	}
}

func TestAreas(t *testing.T) {
	t.Parallel()

	a, err := mustVec(t, -8.987, -9.838, 5.031).AreaOfParallelogramWith(mustVec(t, -4.268, -1.861, -8.866))
	require.NoError(t, err)
	assert.Equal(t, "142.122", numeric.FormatRounded(a, 3))

	a, err = mustVec(t, 1.5, 9.547, 3.691).AreaOfTriangleWith(mustVec(t, -6.007, 0.124, 5.772))
	require.NoError(t, err)
	assert.Equal(t, "42.565", numeric.FormatRounded(a, 3))

	a, err = mustVec(t, 2, 0).AreaOfTriangleWith(mustVec(t, 0, 3))
	require.NoError(t, err)
	assert.Zero(t, a.Cmp(numeric.MustParse("3")))
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, mustVec(t, 0, 0).IsZero())
	assert.True(t, mustVec(t, 1e-11, -1e-12).IsZero())
	assert.False(t, mustVec(t, 1e-9, 0).IsZero())
	assert.True(t, mustVec(t, 1e-9, 0).IsZero(vector.WithTolerance(1e-8)))
	assert.True(t, mustVec(t, 0, 0).IsZero(vector.WithTolerance(0)), "exact zero under zero tolerance")
	assert.False(t, mustVec(t, 1e-300, 0).IsZero(vector.WithTolerance(0)))
}

func TestIsOrthogonalTo(t *testing.T) {
	t.Parallel()

	ok, err := mustVec(t, -2.328, -7.284, -1.214).IsOrthogonalTo(mustVec(t, -1.821, 1.072, -2.94))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mustVec(t, -7.579, -7.88).IsOrthogonalTo(mustVec(t, 22.737, 23.64))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = mustVec(t, 2.118, 4.827).IsOrthogonalTo(mustVec(t, 0, 0))
	require.NoError(t, err)
	assert.True(t, ok, "zero vector is orthogonal to everything")

	ok, err = mustVec(t, 1, 1e-8).IsOrthogonalTo(mustVec(t, 0, 1), vector.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = mustVec(t, 1, 2).IsOrthogonalTo(mustVec(t, 1))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestIsParallelTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v, w vector.Vector
		want bool
	}{
		{"anti-parallel", mustVec(t, -7.579, -7.88), mustVec(t, 22.737, 23.64), true},
		{"same direction", mustVec(t, 4.046, 2.836), mustVec(t, 10.115, 7.09), true},
		{"neither", mustVec(t, -2.029, 9.97, 4.172), mustVec(t, -9.231, -6.639, -7.245), false},
		{"orthogonal", mustVec(t, -2.328, -7.284, -1.214), mustVec(t, -1.821, 1.072, -2.94), false},
		{"zero operand", mustVec(t, 2.118, 4.827), mustVec(t, 0, 0), true},
		{"near-zero operand", mustVec(t, 1e-12, 0), mustVec(t, 0, 5), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.v.IsParallelTo(tc.w)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	// A 1e-3 rad tilt is only parallel under a loose angle tolerance.
	tilted := mustVec(t, 1, math.Tan(1e-3))
	got, err := mustVec(t, 1, 0).IsParallelTo(tilted)
	require.NoError(t, err)
	assert.False(t, got)
	got, err = mustVec(t, 1, 0).IsParallelTo(tilted, vector.WithAngleTolerance(1e-2))
	require.NoError(t, err)
	assert.True(t, got)

	_, err = mustVec(t, 1, 2).IsParallelTo(mustVec(t, 1))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestAngleWith(t *testing.T) {
	t.Parallel()

	rad, err := mustVec(t, 3.183, -7.627).AngleWith(mustVec(t, -2.668, 5.319))
	require.NoError(t, err)
	assert.InDelta(t, 3.0720263098372476, rad, closeTol)

	deg, err := mustVec(t, 7.35, 0.221, 5.188).AngleWith(mustVec(t, 2.751, 8.259, 3.985), vector.InDegrees())
	require.NoError(t, err)
	assert.InDelta(t, 60.27581120523091, deg, closeTol)

	// Historical [0, 1] clamp maps every obtuse angle to π/2.
	legacy, err := mustVec(t, 3.183, -7.627).AngleWith(mustVec(t, -2.668, 5.319), vector.WithLegacyClamp())
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, legacy, closeTol)

	same, err := mustVec(t, 1, 1).AngleWith(mustVec(t, 2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0, same, 1e-7)

	opposite, err := mustVec(t, 1, 0).AngleWith(mustVec(t, -3, 0), vector.InDegrees())
	require.NoError(t, err)
	assert.InDelta(t, 180, opposite, closeTol)
}

func TestAngleWith_ZeroVector(t *testing.T) {
	t.Parallel()

	_, err := mustVec(t, 0, 0).AngleWith(mustVec(t, 1, 0))
	assert.ErrorIs(t, err, vector.ErrNoAngle)
	assert.ErrorIs(t, err, vector.ErrZeroVector)

	_, err = mustVec(t, 1, 0).AngleWith(mustVec(t, 0, 0))
	assert.ErrorIs(t, err, vector.ErrNoAngle)
}

func TestComponents(t *testing.T) {
	t.Parallel()

	p, err := mustVec(t, 3.039, 1.879).ComponentParallelTo(mustVec(t, 0.825, 2.036))
	require.NoError(t, err)
	assert.Equal(t, "[1.083, 2.672]", p.String())

	o, err := mustVec(t, -9.88, -3.264, -8.159).ComponentOrthogonalTo(mustVec(t, -2.155, -9.353, -9.473))
	require.NoError(t, err)
	assert.Equal(t, "[-8.350, 3.376, -1.434]", o.String())

	v, basis := mustVec(t, 3.009, -6.172, 3.692, -2.51), mustVec(t, 6.404, -9.144, 2.759, 8.718)
	p, err = v.ComponentParallelTo(basis)
	require.NoError(t, err)
	o, err = v.ComponentOrthogonalTo(basis)
	require.NoError(t, err)
	assert.Equal(t, "[1.969, -2.811, 0.848, 2.680]", p.String())
	assert.Equal(t, "[1.040, -3.361, 2.844, -5.190]", o.String())

	sum, err := p.Plus(o)
	require.NoError(t, err)
	diff, err := sum.Minus(v)
	require.NoError(t, err)
	assert.True(t, diff.IsZero(), "parallel + orthogonal = v")

	ok, err := o.IsOrthogonalTo(basis)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = p.IsParallelTo(basis)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestComponents_ZeroBasis(t *testing.T) {
	t.Parallel()

	v, zero := mustVec(t, 1, 2), mustVec(t, 0, 0)

	_, err := v.ComponentParallelTo(zero)
	assert.ErrorIs(t, err, vector.ErrNoUniqueParallel)
	assert.ErrorIs(t, err, vector.ErrNoUniqueComponent)
	assert.False(t, errors.Is(err, vector.ErrZeroVector))

	_, err = v.ComponentOrthogonalTo(zero)
	assert.ErrorIs(t, err, vector.ErrNoUniqueOrthogonal)
	assert.ErrorIs(t, err, vector.ErrNoUniqueComponent)

	_, err = v.ComponentParallelTo(mustVec(t, 1, 2, 3))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { vector.WithTolerance(-1) })
	assert.Panics(t, func() { vector.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { vector.WithAngleTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { mustVec(t, 1).IsZero(nil) })
}
