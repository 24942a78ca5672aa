// SPDX-License-Identifier: MIT

package numeric

import "github.com/cockroachdb/apd/v3"

// Round returns d rounded half-even to the given number of decimal places.
// The result always carries exactly `places` fractional digits (1.5 → 1.500)
// and never a negative zero.
func Round(d *apd.Decimal, places int32) *apd.Decimal {
	r := new(apd.Decimal)
	if _, err := roundContext.Quantize(r, d, -places); err != nil {
		// Only reachable for values that never passed Validate.
		panic("numeric: Round: " + err.Error())
	}
	if r.IsZero() {
		r.Negative = false
	}

	return r
}

// FormatRounded renders d rounded to `places` places in plain notation,
// keeping trailing zeros: -7.23 → "-7.230".
func FormatRounded(d *apd.Decimal, places int32) string {
	return Round(d, places).Text('f')
}

// FormatCoefficient renders d rounded to `places` places with trailing zeros
// dropped, so integral values carry no decimal point: 2.0004 → "2",
// 1.2100 → "1.21".
func FormatCoefficient(d *apd.Decimal, places int32) string {
	r := Round(d, places)
	r.Reduce(r)

	return r.Text('f')
}
