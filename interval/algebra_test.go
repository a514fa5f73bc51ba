package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples covers gaps, overlaps, touching bounds with every closed/open
// combination and single points.
func samples() []Interval {
	var out []Interval
	bounds := [][2]float64{{0, 2}, {2, 4}, {1, 3}, {-1, 5}, {3, 6}, {2, 2}, {0, 4}}
	for _, b := range bounds {
		for _, lc := range []bool{true, false} {
			for _, hc := range []bool{true, false} {
				iv := Interval{Endpoint{b[0], lc}, Endpoint{b[1], hc}}
				if iv.IsEmpty() {
					continue
				}
				out = append(out, iv)
			}
		}
	}
	return out
}

func TestIntersectExamples(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Interval
		want  Interval
		empty bool
	}{
		{name: "overlap", a: Closed(-2, 3), b: ClosedOpen(0, 4), want: Closed(0, 3)},
		{name: "closed touch is a point", a: Closed(0, 2), b: Closed(2, 4), want: Closed(2, 2)},
		{name: "half open touch is empty", a: ClosedOpen(0, 2), b: Closed(2, 4), empty: true},
		{name: "gap", a: Closed(0, 1), b: Closed(2, 3), empty: true},
		{name: "equal lows and", a: Closed(0, 3), b: OpenClosed(0, 5), want: OpenClosed(0, 3)},
		{name: "equal highs and", a: Closed(0, 3), b: ClosedOpen(1, 3), want: ClosedOpen(1, 3)},
		{name: "nested", a: Open(-5, 5), b: Closed(1, 2), want: Closed(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			if tt.empty {
				assert.False(t, ok, "got %v", got)
				assert.True(t, IntersectSet(tt.a, tt.b).IsEmpty())
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnionExamples(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Set
	}{
		{name: "open meets closed", a: ClosedOpen(0, 2), b: Closed(2, 4), want: Set{Closed(0, 4)}},
		{name: "open meets open", a: ClosedOpen(0, 2), b: OpenClosed(2, 4), want: Set{ClosedOpen(0, 2), OpenClosed(2, 4)}},
		{name: "overlap", a: Closed(-2, 3), b: ClosedOpen(0, 4), want: Set{ClosedOpen(-2, 4)}},
		{name: "gap keeps order", a: Closed(5, 6), b: Open(0, 1), want: Set{Open(0, 1), Closed(5, 6)}},
		{name: "equal lows or", a: OpenClosed(0, 3), b: ClosedOpen(0, 1), want: Set{Closed(0, 3)}},
		{name: "equal highs or", a: ClosedOpen(0, 3), b: Closed(1, 3), want: Set{Closed(0, 3)}},
		{name: "point inside", a: Closed(2, 2), b: Open(0, 4), want: Set{Open(0, 4)}},
		{name: "point closes gap", a: Open(0, 2), b: Closed(2, 2), want: Set{OpenClosed(0, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Union(tt.a, tt.b))
		})
	}
}

func TestUnionEndToEndDrag(t *testing.T) {
	a := Closed(-2, 3)
	a.High.Value = 5
	assert.Equal(t, Set{Closed(-2, 5)}, Union(a, ClosedOpen(0, 4)))
}

func TestUnionWithEmpty(t *testing.T) {
	empty := ClosedOpen(1, 1)
	assert.Equal(t, Set{Closed(0, 2)}, Union(empty, Closed(0, 2)))
	assert.Equal(t, Set{Closed(0, 2)}, Union(Closed(0, 2), empty))
	assert.True(t, Union(empty, Open(3, 3)).IsEmpty())
}

func TestIntersectCommutes(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			ab, okAB := Intersect(a, b)
			ba, okBA := Intersect(b, a)
			require.Equal(t, okAB, okBA, "%v ∩ %v", a, b)
			assert.Equal(t, ab, ba, "%v ∩ %v", a, b)
		}
	}
}

func TestUnionCommutes(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			assert.Equal(t, Union(a, b), Union(b, a), "%v ∪ %v", a, b)
		}
	}
}

func TestIdempotent(t *testing.T) {
	for _, a := range samples() {
		got, ok := Intersect(a, a)
		require.True(t, ok, "%v", a)
		assert.Equal(t, a, got)
		assert.Equal(t, Set{a}, Union(a, a))
	}
}

// Membership must agree with the set definition at every bound and midpoint.
func TestMembershipAgrees(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			inter := IntersectSet(a, b)
			union := Union(a, b)
			for x := -1.5; x <= 6.5; x += 0.5 {
				assert.Equal(t, a.Contains(x) && b.Contains(x), inter.Contains(x), "%v ∩ %v at %v", a, b, x)
				assert.Equal(t, a.Contains(x) || b.Contains(x), union.Contains(x), "%v ∪ %v at %v", a, b, x)
			}
		}
	}
}

func TestReversedIntervalPanics(t *testing.T) {
	bad := Interval{Endpoint{3, true}, Endpoint{1, true}}
	assert.Panics(t, func() { Intersect(bad, Closed(0, 1)) })
	assert.Panics(t, func() { Union(Closed(0, 1), bad) })
}
