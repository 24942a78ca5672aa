// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestMathGLRoundTrip(t *testing.T) {
	t.Parallel()

	v, err := vector.FromVec3(mgl64.Vec3{8.462, 7.893, -8.187})
	require.NoError(t, err)
	assert.True(t, v.Equal(mustVec(t, 8.462, 7.893, -8.187)))

	w := mustVec(t, 6.984, -5.975, 4.778)
	c, err := v.Cross(w)
	require.NoError(t, err)
	cv, err := c.Vec3()
	require.NoError(t, err)

	gv, err := w.Vec3()
	require.NoError(t, err)
	vv, err := v.Vec3()
	require.NoError(t, err)
	want := vv.Cross(gv)
	assert.InDeltaSlice(t, want[:], cv[:], 1e-9, "decimal cross agrees with mgl64")

	p, err := vector.FromVec2(mgl64.Vec2{3, 4})
	require.NoError(t, err)
	p2, err := p.Vec2()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec2{3, 4}, p2)
	p3, err := p.Vec3()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{3, 4, 0}, p3)

	_, err = v.Vec2()
	assert.ErrorIs(t, err, vector.ErrDimensionUnsupported)
	_, err = mustVec(t, 1, 2, 3, 4).Vec3()
	assert.ErrorIs(t, err, vector.ErrDimensionUnsupported)
}

func TestGeomConversions(t *testing.T) {
	t.Parallel()

	v, err := vector.FromCoord(geom.Coord{1.5, -2.25})
	require.NoError(t, err)
	assert.Equal(t, geom.Coord{1.5, -2.25}, v.Coord())

	pt, err := v.Point()
	require.NoError(t, err)
	assert.Equal(t, geom.XY, pt.Layout())
	assert.Equal(t, 1.5, pt.X())
	assert.Equal(t, -2.25, pt.Y())

	pt, err = mustVec(t, 1, 2, 3).Point()
	require.NoError(t, err)
	assert.Equal(t, geom.XYZ, pt.Layout())
	assert.Equal(t, 3.0, pt.Z())

	_, err = mustVec(t, 1).Point()
	assert.ErrorIs(t, err, vector.ErrDimensionUnsupported)
	_, err = vector.FromCoord(geom.Coord{})
	assert.ErrorIs(t, err, vector.ErrInvalidInput)
}
