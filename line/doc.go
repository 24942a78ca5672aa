// SPDX-License-Identifier: MIT

// Package line models a line in the plane by its implicit equation
//
//	n · x = k        (n = normal vector, k = constant term)
//
// and answers the classic questions about a pair of lines: are they
// parallel, are they the same line, and where do they meet.
//
// A Line also derives a basepoint, one point known to lie on it: the
// coordinate at the first non-zero index of n is set to k/nᵢ and the others
// to zero. A degenerate line (n ≈ 0) has no basepoint.
//
// Intersection is computed with Cramer's rule on decimal coefficients.
// Parallel and coincident lines are ordinary outcomes reported through
// Intersection.Kind, never errors:
//
//	l1 := line.MustNew(7.204, 3.182, 8.68)
//	l2 := line.MustNew(8.172, 4.114, 9.883)
//	in, err := l1.IntersectionWith(l2)
//	// in.Kind == line.SinglePoint, in.Point ≈ (1.173, 0.073)
//
// String renders the equation in standard form, e.g. "4.046x_1 + 2.836x_2 = 1.21".
package line
