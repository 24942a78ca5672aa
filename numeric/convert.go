// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ToDecimal converts a numeric-like value into a fresh *apd.Decimal.
//
// Accepted: int, int8..int64, uint, uint8..uint64, float32, float64, string
// (decimal literal, surrounding spaces ignored) and *apd.Decimal (copied).
// Floats are read through their shortest decimal representation, so 8.218
// becomes exactly 8.218 and not its binary expansion.
//
// Errors: ErrInvalidNumber for unsupported types, malformed strings, NaN and
// ±Inf; ErrExponentRange for finite values outside the admitted range.
func ToDecimal(v any) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	switch x := v.(type) {
	case *apd.Decimal:
		if x == nil {
			return nil, convertErrorf(v, ErrInvalidNumber)
		}
		d.Set(x)
	case int:
		d.SetInt64(int64(x))
	case int8:
		d.SetInt64(int64(x))
	case int16:
		d.SetInt64(int64(x))
	case int32:
		d.SetInt64(int64(x))
	case int64:
		d.SetInt64(x)
	case uint:
		return parseString(v, strconv.FormatUint(uint64(x), 10))
	case uint8:
		d.SetInt64(int64(x))
	case uint16:
		d.SetInt64(int64(x))
	case uint32:
		d.SetInt64(int64(x))
	case uint64:
		return parseString(v, strconv.FormatUint(x, 10))
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil, convertErrorf(v, ErrInvalidNumber)
		}
		return parseString(v, strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, convertErrorf(v, ErrInvalidNumber)
		}
		if _, err := d.SetFloat64(x); err != nil {
			return nil, convertErrorf(v, ErrInvalidNumber)
		}
	case string:
		return parseString(v, strings.TrimSpace(x))
	default:
		return nil, convertErrorf(v, ErrInvalidNumber)
	}

	if err := Validate(d); err != nil {
		return nil, convertErrorf(v, err)
	}

	return d, nil
}

// parseString reads s as a decimal literal and validates it.
func parseString(v any, s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, convertErrorf(v, ErrInvalidNumber)
	}
	if err = Validate(d); err != nil {
		return nil, convertErrorf(v, err)
	}

	return d, nil
}

// MustParse parses a decimal literal and panics on failure.
// Intended for constants in code, tests and examples.
func MustParse(s string) *apd.Decimal {
	d, err := ToDecimal(s)
	if err != nil {
		panic(err)
	}

	return d
}
