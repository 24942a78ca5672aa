// SPDX-License-Identifier: MIT

// Package numeric holds the decimal policy shared by the vector and line
// packages.
//
// Every coordinate and scalar in lvgeom is an *apd.Decimal evaluated under a
// single Context: 30 significant digits, half-even rounding and apd's default
// traps. Values are admitted through ToDecimal, which accepts the usual Go
// numeric kinds, decimal strings and *apd.Decimal, and rejects NaN, ±Inf and
// anything whose magnitude falls outside ±1e10000.
//
// The magnitude bound is what lets pure operations such as Magnitude and the
// zero tests be error-free: squaring and summing admitted values can never
// leave apd's exponent range.
//
// Rendering helpers round half-even to a fixed number of places:
//
//	FormatRounded(d, 3)     // "-7.230"  (fixed places, coordinates)
//	FormatCoefficient(d, 3) // "2", "1.21" (trailing zeros dropped, equations)
package numeric
