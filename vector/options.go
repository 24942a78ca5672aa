// SPDX-License-Identifier: MIT

// Package vector: functional configuration for tolerance-based predicates and
// angle reporting. This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, the internal resolver.
//
// Notes:
//   - Tolerances are float64 and compared against decimal magnitudes; they are
//     thresholds, not arithmetic operands, so binary float is sufficient.
//   - WithLegacyClamp exists only for parity with historical outputs; it maps
//     every obtuse angle to π/2.
package vector

import (
	"math"

	"github.com/katalvlaran/lvgeom/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the threshold for IsZero and IsOrthogonalTo.
	DefaultTolerance = numeric.DefaultEpsilon

	// DefaultAngleTolerance is the maximum distance (radians) from 0 or π at
	// which IsParallelTo still reports parallel vectors. arccos loses about
	// half of the available digits near ±1, so this is much looser than
	// DefaultTolerance.
	DefaultAngleTolerance = 1e-6

	// DefaultInDegrees selects radians for AngleWith.
	DefaultInDegrees = false

	// DefaultLegacyClamp selects the [-1, 1] cosine clamp.
	DefaultLegacyClamp = false
)

const (
	panicToleranceInvalid      = "vector: WithTolerance: eps must be finite, non-negative"
	panicAngleToleranceInvalid = "vector: WithAngleTolerance: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public methods accept ...Option.
type Options struct {
	tolerance      float64 // >= 0; DefaultTolerance
	angleTolerance float64 // >= 0; DefaultAngleTolerance
	inDegrees      bool    // DefaultInDegrees
	legacyClamp    bool    // DefaultLegacyClamp
}

// WithTolerance sets the near-zero threshold used by IsZero and IsOrthogonalTo.
// Panics if eps is NaN, ±Inf or negative.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// WithAngleTolerance sets how close to 0 or π (in radians) the angle between
// two vectors must be for IsParallelTo to report true.
// Panics if eps is NaN, ±Inf or negative.
func WithAngleTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicAngleToleranceInvalid)
	}

	return func(o *Options) { o.angleTolerance = eps }
}

// InDegrees makes AngleWith report degrees instead of radians.
func InDegrees() Option {
	return func(o *Options) { o.inDegrees = true }
}

// WithLegacyClamp clamps the cosine in AngleWith to [0, 1] instead of [-1, 1].
// Every obtuse angle then comes out as π/2. Use only to reproduce historical
// results.
func WithLegacyClamp() Option {
	return func(o *Options) { o.legacyClamp = true }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		tolerance:      DefaultTolerance,
		angleTolerance: DefaultAngleTolerance,
		inDegrees:      DefaultInDegrees,
		legacyClamp:    DefaultLegacyClamp,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
