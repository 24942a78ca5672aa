// Package lvgeom is a small library of exact-decimal analytic geometry:
// vectors in any dimension and lines in the plane, computed with 30
// significant decimal digits instead of binary floating point.
//
// What is inside?
//
//	numeric/: the shared decimal context (precision 30, half-even),
//	           conversion of Go numbers and strings, rounding for display
//	vector/:  the immutable Vector: sums, scaling, magnitude, dot and
//	           cross products, angles, parallel/orthogonal decomposition,
//	           interop with mathgl (mgl64) and go-geom
//	line/:    the 2D Line a·x₁ + b·x₂ = k: basepoint, equality,
//	           parallelism and intersection by Cramer's rule
//
// Why decimals?
//
//   - 7.204·4.114 − 3.182·8.172 is exactly 3.633952, not a neighbour of it
//   - two lines that are scalar multiples of each other really are coincident
//   - results print the way they were typed: [7.089, -7.230]
//
// Quick example:
//
//	v := vector.MustNew(3.039, 1.879)
//	b := vector.MustNew(0.825, 2.036)
//	p, _ := v.ComponentParallelTo(b)   // [1.083, 2.672]
//	o, _ := v.ComponentOrthogonalTo(b) // [1.956, -0.793]
//
//	l1 := line.MustNew(7.204, 3.182, 8.68)
//	l2 := line.MustNew(8.172, 4.114, 9.883)
//	in, _ := l1.IntersectionWith(l2)   // SinglePoint at [1.173, 0.073]
//
// Nothing is logged and nothing panics on user input: every failure is a
// wrapped sentinel error that errors.Is can match.
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
