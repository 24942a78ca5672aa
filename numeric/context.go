// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

const (
	// Precision is the number of significant digits carried by every operation.
	Precision = 30

	// DefaultEpsilon is the near-zero tolerance used when no other is given.
	DefaultEpsilon = 1e-10

	// MaxMagnitudeExponent bounds the adjusted exponent of admitted values.
	// Squares of admitted values stay far inside apd.MaxExponent.
	MaxMagnitudeExponent = 10000
)

// Context is the shared decimal context. Do not mutate it; derive a copy with
// WithPrecision when a different precision is needed.
var Context = &apd.Context{
	Precision:   Precision,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
	Rounding:    apd.RoundHalfEven,
}

// roundContext quantizes without ever running out of digits: an admitted
// value has at most MaxMagnitudeExponent integral digits.
var roundContext = Context.WithPrecision(2*MaxMagnitudeExponent + Precision)

// Validate reports whether d is finite and within the admitted magnitude range.
func Validate(d *apd.Decimal) error {
	if d == nil || d.Form != apd.Finite {
		return ErrInvalidNumber
	}
	if d.IsZero() {
		return nil
	}
	adj := int64(d.Exponent) + d.NumDigits() - 1
	if adj > MaxMagnitudeExponent || adj < -MaxMagnitudeExponent {
		return ErrExponentRange
	}

	return nil
}

// IsNearZero reports whether |d| < eps.
func IsNearZero(d *apd.Decimal, eps float64) bool {
	var abs apd.Decimal
	abs.Abs(d)

	return abs.Cmp(FromFloat(eps)) < 0
}

// FromFloat converts a finite float64 through its shortest decimal
// representation. It panics on NaN or ±Inf; use ToDecimal for untrusted input.
func FromFloat(f float64) *apd.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("numeric: FromFloat: non-finite value")
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		panic("numeric: FromFloat: " + err.Error())
	}

	return d
}

// Float64 converts d to the nearest float64. Values beyond the float64 range
// become ±Inf.
func Float64(d *apd.Decimal) float64 {
	f, _ := d.Float64()

	return f
}
