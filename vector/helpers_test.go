// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

// closeTol is the tolerance used when comparing decimal results with
// float64 expectations.
const closeTol = 1e-9

// mustVec builds a vector or fails the test.
func mustVec(t *testing.T, coords ...float64) vector.Vector {
	t.Helper()
	v, err := vector.New(coords...)
	require.NoError(t, err)

	return v
}

// requireDecimalNear asserts |got - want| < tol.
func requireDecimalNear(t *testing.T, want float64, got *apd.Decimal, tol float64) {
	t.Helper()
	require.InDelta(t, want, numeric.Float64(got), tol, "got %s", got)
}

// requireVectorNear asserts every coordinate of got is within tol of want.
func requireVectorNear(t *testing.T, want []float64, got vector.Vector, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Dimension(), "dimension")
	require.InDeltaSlice(t, want, got.Float64s(), tol, "got %s", got)
}
