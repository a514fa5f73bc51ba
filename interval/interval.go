package interval

import (
	"github.com/pkg/errors"
)

// ErrDegenerate is the cause of every DegenerateIntervalError.
var ErrDegenerate = errors.New("degenerate interval")

// Side names one of the two endpoints of an interval.
type Side int

const (
	Low Side = iota
	High
)

func (s Side) String() string {
	if s == Low {
		return "low"
	}
	return "high"
}

// Partner returns the opposite side.
func (s Side) Partner() Side {
	return 1 - s
}

// Endpoint is one boundary of an interval. A closed endpoint belongs to
// the interval, an open one does not.
type Endpoint struct {
	Value  float64
	Closed bool
}

// Interval is the set of reals between Low and High.
//
// Low.Value <= High.Value always holds for intervals built through New.
// When both values are equal the interval is a single point if both
// endpoints are closed and the empty set otherwise.
type Interval struct {
	Low, High Endpoint
}

// New builds an interval and rejects a low value above the high value.
func New(low, high Endpoint) (Interval, error) {
	if low.Value > high.Value {
		return Interval{}, errors.Wrapf(ErrDegenerate, "low %v is above high %v", low.Value, high.Value)
	}
	return Interval{Low: low, High: high}, nil
}

// Closed returns [lo, hi].
func Closed(lo, hi float64) Interval {
	return Interval{Endpoint{lo, true}, Endpoint{hi, true}}
}

// Open returns ]lo, hi[.
func Open(lo, hi float64) Interval {
	return Interval{Endpoint{lo, false}, Endpoint{hi, false}}
}

// ClosedOpen returns [lo, hi[.
func ClosedOpen(lo, hi float64) Interval {
	return Interval{Endpoint{lo, true}, Endpoint{hi, false}}
}

// OpenClosed returns ]lo, hi].
func OpenClosed(lo, hi float64) Interval {
	return Interval{Endpoint{lo, false}, Endpoint{hi, true}}
}

// Endpoint returns the endpoint on side s.
func (i Interval) Endpoint(s Side) Endpoint {
	if s == Low {
		return i.Low
	}
	return i.High
}

// WithEndpoint returns a copy of i with side s replaced.
func (i Interval) WithEndpoint(s Side, e Endpoint) Interval {
	if s == Low {
		i.Low = e
	} else {
		i.High = e
	}
	return i
}

func (i Interval) IsEmpty() bool {
	if i.Low.Value == i.High.Value {
		return !i.IsPoint()
	}
	return i.Low.Value > i.High.Value
}

// IsPoint reports whether i holds exactly one number.
func (i Interval) IsPoint() bool {
	return i.Low.Value == i.High.Value && i.Low.Closed && i.High.Closed
}

func (i Interval) Contains(x float64) bool {
	switch {
	case x < i.Low.Value || x > i.High.Value:
		return false
	case x == i.Low.Value:
		return i.Low.Closed && (x < i.High.Value || i.High.Closed)
	case x == i.High.Value:
		return i.High.Closed
	}
	return true
}

// Validate reports a DegenerateIntervalError for reversed or empty intervals.
func (i Interval) Validate() error {
	if i.Low.Value > i.High.Value {
		return errors.Wrapf(ErrDegenerate, "low %v is above high %v", i.Low.Value, i.High.Value)
	}
	if i.IsEmpty() {
		return errors.Wrapf(ErrDegenerate, "%v holds no point", Notate(i))
	}
	return nil
}

func (i Interval) String() string {
	return Notate(i)
}

// mustBeOrdered panics on intervals that were built around New.
func mustBeOrdered(i Interval) {
	if i.Low.Value > i.High.Value {
		panic(errors.Wrapf(ErrDegenerate, "low %v is above high %v", i.Low.Value, i.High.Value))
	}
}
