package interval

import "strings"

// Set is a list of pairwise disjoint intervals, ordered by low endpoint.
// A nil Set is the empty set.
type Set []Interval

func (s Set) IsEmpty() bool {
	return len(s) == 0
}

func (s Set) Contains(x float64) bool {
	for _, i := range s {
		if i.Contains(x) {
			return true
		}
	}
	return false
}

func (s Set) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	parts := make([]string, len(s))
	for n, i := range s {
		parts[n] = Notate(i)
	}
	return strings.Join(parts, " ∪ ")
}

// Intersect returns the points shared by a and b. The second result is
// false when they share none.
//
// On equal bounds an endpoint stays closed only if it is closed on both
// sides.
func Intersect(a, b Interval) (Interval, bool) {
	mustBeOrdered(a)
	mustBeOrdered(b)

	var res Interval
	switch {
	case a.Low.Value > b.Low.Value:
		res.Low = a.Low
	case a.Low.Value < b.Low.Value:
		res.Low = b.Low
	default:
		res.Low = Endpoint{a.Low.Value, a.Low.Closed && b.Low.Closed}
	}

	switch {
	case a.High.Value < b.High.Value:
		res.High = a.High
	case a.High.Value > b.High.Value:
		res.High = b.High
	default:
		res.High = Endpoint{a.High.Value, a.High.Closed && b.High.Closed}
	}

	if res.Low.Value < res.High.Value || (res.Low.Value == res.High.Value && res.Low.Closed && res.High.Closed) {
		return res, true
	}
	return Interval{}, false
}

// IntersectSet is Intersect with the result expressed as a Set.
func IntersectSet(a, b Interval) Set {
	if res, ok := Intersect(a, b); ok {
		return Set{res}
	}
	return nil
}

// Union returns the points in a or b. Intervals that neither overlap nor
// touch at a point one of them contains stay as two pieces.
//
// On equal bounds a merged endpoint is closed if it is closed on either
// side.
func Union(a, b Interval) Set {
	mustBeOrdered(a)
	mustBeOrdered(b)

	switch {
	case a.IsEmpty() && b.IsEmpty():
		return nil
	case a.IsEmpty():
		return Set{b}
	case b.IsEmpty():
		return Set{a}
	}

	left, right := a, b
	if b.Low.Value < a.Low.Value {
		left, right = b, a
	}
	if Disjoint(left, right) {
		return Set{left, right}
	}

	var res Interval
	switch {
	case a.Low.Value < b.Low.Value:
		res.Low = a.Low
	case a.Low.Value > b.Low.Value:
		res.Low = b.Low
	default:
		res.Low = Endpoint{a.Low.Value, a.Low.Closed || b.Low.Closed}
	}

	switch {
	case a.High.Value > b.High.Value:
		res.High = a.High
	case a.High.Value < b.High.Value:
		res.High = b.High
	default:
		res.High = Endpoint{a.High.Value, a.High.Closed || b.High.Closed}
	}
	return Set{res}
}

// Disjoint reports whether left and right, with left.Low <= right.Low,
// must stay separate pieces in a union: a gap between them or a shared
// bound that is open on both sides.
func Disjoint(left, right Interval) bool {
	if left.High.Value < right.Low.Value {
		return true
	}
	return left.High.Value == right.Low.Value && !left.High.Closed && !right.Low.Closed
}
