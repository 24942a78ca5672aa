// SPDX-License-Identifier: MIT

package line

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvgeom/numeric"
)

// displayPlaces is the number of decimal places used by String.
const displayPlaces = 3

// String renders the equation in standard form with coefficients rounded to
// three places: zero terms are omitted, unit coefficients print as a bare
// sign and integral values print without a decimal point.
//
//	4.046x_1 + 2.836x_2 = 1.21
//	-x_1 - 2x_2 = 0
//	0 = 5
func (l Line) String() string {
	coords := l.normalOrZero().Coordinates()
	terms := make([]string, 0, len(coords))
	for i, c := range coords {
		r := numeric.Round(c, displayPlaces)
		if r.IsZero() {
			continue
		}
		terms = append(terms, writeCoefficient(r, len(terms) == 0)+fmt.Sprintf("x_%d", i+1))
	}

	lhs := "0"
	if len(terms) > 0 {
		lhs = strings.Join(terms, " ")
	}

	return lhs + " = " + numeric.FormatCoefficient(l.constantOrZero(), displayPlaces)
}

// writeCoefficient renders a rounded, non-zero coefficient with its sign:
// "-4.046" / "4.046" for the leading term, "- 4.046" / "+ 4.046" afterwards.
// A magnitude of exactly 1 is left implicit.
func writeCoefficient(r *apd.Decimal, initial bool) string {
	var sb strings.Builder
	switch {
	case r.Negative:
		sb.WriteByte('-')
	case !initial:
		sb.WriteByte('+')
	}
	if !initial {
		sb.WriteByte(' ')
	}

	var abs apd.Decimal
	abs.Abs(r)
	if abs.Cmp(decimalOne) != 0 {
		sb.WriteString(numeric.FormatCoefficient(&abs, displayPlaces))
	}

	return sb.String()
}

var decimalOne = apd.New(1, 0)
