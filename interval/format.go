package interval

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// snapBelow is the fractional magnitude under which a rounded value is
// displayed as an integer.
const snapBelow = 0.08

// Format renders v with two decimals, or as an integer when the two-decimal
// rounding lies within snapBelow of its integer part.
//
//	Format(2.999) == "3"
//	Format(2.95)  == "2.95"
//	Format(-0.03) == "0"
func Format(v float64) string {
	r := scalar.Round(v, 2)
	_, frac := math.Modf(r)
	if math.Abs(frac) < snapBelow {
		n := math.Round(r)
		if n == 0 {
			// no "-0"
			n = 0
		}
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// Notate writes i in bracket notation: "[" or "]" on the left for a closed
// or open low endpoint, "]" or "[" on the right for a closed or open high
// endpoint.
func Notate(i Interval) string {
	l, r := "]", "["
	if i.Low.Closed {
		l = "["
	}
	if i.High.Closed {
		r = "]"
	}
	return l + Format(i.Low.Value) + ", " + Format(i.High.Value) + r
}
