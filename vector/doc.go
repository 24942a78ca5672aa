// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-dimension Vector of
// arbitrary-precision decimals together with the elementary algebra and
// geometry on it.
//
// 🚀 What is in the box?
//
//   - Arithmetic: Plus, Minus, TimesScalar / Scale, Dot
//   - Length & direction: Magnitude, Normalized
//   - 2D/3D only: Cross, AreaOfParallelogramWith, AreaOfTriangleWith
//   - Relations: IsZero, IsOrthogonalTo, IsParallelTo, AngleWith
//   - Decomposition: ComponentParallelTo, ComponentOrthogonalTo
//   - Interop: mathgl mgl64.Vec2/Vec3 and go-geom Coord/Point
//
// ⚙️ Numeric policy:
//
//	Coordinates are *apd.Decimal values evaluated under numeric.Context
//	(30 significant digits, half-even). Tolerance-based predicates compare
//	against float64 tolerances configured through functional options:
//
//	  ok := v.IsZero()                                  // |v| < 1e-10
//	  ok, err := v.IsOrthogonalTo(w, vector.WithTolerance(1e-6))
//	  deg, err := v.AngleWith(w, vector.InDegrees())
//
// Errors:
//
//	Every failure is a sentinel from errors.go, wrapped with the method name.
//	Match with errors.Is:
//
//	  ErrInvalidInput         – empty input or an unreadable coordinate
//	  ErrDimensionMismatch    – binary operation on different dimensions
//	  ErrDimensionUnsupported – Cross/areas/conversions outside 2D and 3D
//	  ErrZeroVector           – Normalized or AngleWith on a zero vector
//	  ErrNoUniqueComponent    – projection onto a zero basis
//
// Vectors are never mutated after construction, so any Vector may be shared
// between goroutines freely.
package vector
