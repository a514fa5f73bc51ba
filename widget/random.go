package widget

import (
	"math"
	"math/rand/v2"

	"numline/interval"
)

// Randomizer supplies fresh intervals for quiz widgets.
type Randomizer interface {
	// Interval returns an interval with integer endpoints lo <= a < b <= hi
	// and each side independently open or closed.
	Interval(lo, hi int) interval.Interval
}

type RandRandomizer struct {
	r *rand.Rand
}

func NewRandomizer(seed1, seed2 uint64) *RandRandomizer {
	return &RandRandomizer{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (rr *RandRandomizer) intBetween(lo, hi int) int {
	return lo + rr.r.IntN(hi-lo+1)
}

func (rr *RandRandomizer) Interval(lo, hi int) interval.Interval {
	if hi <= lo {
		hi = lo + 1
	}
	a := rr.intBetween(lo, hi-1)
	b := rr.intBetween(a+1, hi)
	return interval.Interval{
		Low:  interval.Endpoint{Value: float64(a), Closed: rr.r.IntN(2) == 0},
		High: interval.Endpoint{Value: float64(b), Closed: rr.r.IntN(2) == 0},
	}
}

// integerRange is the widest integer range inside [lo, hi].
func integerRange(lo, hi float64) (int, int) {
	return int(math.Ceil(lo)), int(math.Floor(hi))
}
