// Package model holds the editable intervals of one widget together with
// the intersection or union derived from them.
package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"

	"numline/interval"
	"numline/notation"
)

// Handle addresses one endpoint of one of the model's intervals.
type Handle struct {
	Track int
	Side  interval.Side
}

func (h Handle) String() string {
	return fmt.Sprintf("%d/%v", h.Track, h.Side)
}

// Policy decides when the derived result is refreshed.
type Policy int

const (
	// Live recomputes after every move, release and toggle.
	Live Policy = iota
	// OnRelease recomputes when a drag ends. Toggles recompute at once
	// unless a drag is in progress, in which case the release picks them up.
	OnRelease
	// Manual recomputes only through Recompute. Edits mark the result stale.
	Manual
)

func (p Policy) String() string {
	switch p {
	case Live:
		return "live"
	case OnRelease:
		return "on-release"
	case Manual:
		return "manual"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Bounds constrain a moving endpoint: the domain, and the smallest gap
// allowed between the two endpoints of an interval.
type Bounds struct {
	Min, Max float64
	MinGap   float64
}

type Metrics struct {
	Edits      tally.Counter
	Moves      tally.Counter
	Toggles    tally.Counter
	Recomputes tally.Counter
	Replaced   tally.Counter
}

func NewMetrics(scope tally.Scope) *Metrics {
	return &Metrics{
		Edits:      scope.Counter("edits"),
		Moves:      scope.Counter("moves"),
		Toggles:    scope.Counter("toggles"),
		Recomputes: scope.Counter("recomputes"),
		Replaced:   scope.Counter("replaced"),
	}
}

type Model struct {
	op        notation.Op
	policy    Policy
	intervals []interval.Interval

	editing *Handle

	result   interval.Set
	computed bool

	observers []func(interval.Set)

	log     *log.Entry
	metrics *Metrics
}

// New creates a model over one or two intervals. Intersection and union
// need exactly two.
func New(op notation.Op, policy Policy, logger *log.Entry, scope tally.Scope, intervals ...interval.Interval) (*Model, error) {
	if scope == nil {
		scope = tally.NoopScope
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	m := &Model{
		op:      op,
		policy:  policy,
		log:     logger.WithField("op", op.String()),
		metrics: NewMetrics(scope),
	}
	if err := m.check(intervals); err != nil {
		return nil, err
	}
	m.intervals = append([]interval.Interval(nil), intervals...)
	if policy != Manual {
		m.Recompute()
	}
	return m, nil
}

func (m *Model) check(intervals []interval.Interval) error {
	switch {
	case len(intervals) == 0 || len(intervals) > 2:
		return errors.Errorf("a model holds one or two intervals, got %d", len(intervals))
	case m.op != notation.None && len(intervals) != 2:
		return errors.Errorf("%v needs two intervals, got %d", m.op, len(intervals))
	}
	for n, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return errors.Wrapf(err, "interval %d", n)
		}
	}
	return nil
}

func (m *Model) Op() notation.Op { return m.op }
func (m *Model) Policy() Policy { return m.policy }
func (m *Model) Len() int { return len(m.intervals) }

func (m *Model) Interval(track int) interval.Interval {
	return m.intervals[track]
}

// Intervals returns a copy of the current intervals.
func (m *Model) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), m.intervals...)
}

// Result returns the last derived set and whether it is current. For
// models without an operation the set is never computed.
func (m *Model) Result() (interval.Set, bool) {
	return m.result, m.computed
}

// Handles lists every endpoint of the model, track by track, low first.
func (m *Model) Handles() []Handle {
	out := make([]Handle, 0, 2*len(m.intervals))
	for n := range m.intervals {
		out = append(out, Handle{n, interval.Low}, Handle{n, interval.High})
	}
	return out
}

// Endpoint returns the endpoint a handle points at.
func (m *Model) Endpoint(h Handle) interval.Endpoint {
	return m.intervals[h.Track].Endpoint(h.Side)
}

// OnChange registers fn to run after every recomputation.
func (m *Model) OnChange(fn func(interval.Set)) {
	m.observers = append(m.observers, fn)
}

func (m *Model) valid(h Handle) bool {
	return h.Track >= 0 && h.Track < len(m.intervals) && (h.Side == interval.Low || h.Side == interval.High)
}

// Editing returns the handle being dragged, if any.
func (m *Model) Editing() (Handle, bool) {
	if m.editing == nil {
		return Handle{}, false
	}
	return *m.editing, true
}

// BeginEdit starts dragging h. It does nothing while another drag is in
// progress.
func (m *Model) BeginEdit(h Handle) bool {
	if m.editing != nil || !m.valid(h) {
		return false
	}
	m.editing = &h
	m.metrics.Edits.Inc(1)
	m.log.WithField("handle", h).Debug("edit started")
	return true
}

// MoveEndpoint sets the dragged endpoint to proposed, clamped into the
// domain and kept at least MinGap away from its partner. It is ignored
// unless h is the handle being dragged, and refused when no value inside
// the domain keeps the gap.
func (m *Model) MoveEndpoint(h Handle, proposed float64, b Bounds) bool {
	if m.editing == nil || *m.editing != h {
		return false
	}

	iv := m.intervals[h.Track]
	partner := iv.Endpoint(h.Side.Partner()).Value
	v := math.Max(b.Min, math.Min(b.Max, proposed))
	if h.Side == interval.Low {
		v = math.Min(v, partner-b.MinGap)
	} else {
		v = math.Max(v, partner+b.MinGap)
	}

	if v < b.Min || v > b.Max {
		m.log.WithFields(log.Fields{"handle": h, "value": v}).Debug("move refused")
		return false
	}

	low, high := iv.Low, iv.High
	if h.Side == interval.Low {
		low.Value = v
	} else {
		high.Value = v
	}
	next, err := interval.New(low, high)
	if err != nil {
		m.log.WithError(err).Warn("move refused")
		return false
	}
	m.intervals[h.Track] = next
	m.metrics.Moves.Inc(1)

	switch m.policy {
	case Live:
		m.Recompute()
	case Manual:
		m.computed = false
	}
	return true
}

// EndEdit finishes the drag and keeps the last value. Leaving the tracking
// area ends a drag the same way.
func (m *Model) EndEdit() bool {
	if m.editing == nil {
		return false
	}
	m.log.WithFields(log.Fields{
		"handle":   *m.editing,
		"interval": m.intervals[m.editing.Track].String(),
	}).Debug("edit finished")
	m.editing = nil
	if m.policy != Manual {
		m.Recompute()
	}
	return true
}

// ToggleClosed flips whether the endpoint belongs to its interval. It is
// allowed at any time, dragging or not.
func (m *Model) ToggleClosed(h Handle) bool {
	if !m.valid(h) {
		return false
	}
	iv := m.intervals[h.Track]
	e := iv.Endpoint(h.Side)
	e.Closed = !e.Closed
	m.intervals[h.Track] = iv.WithEndpoint(h.Side, e)
	m.metrics.Toggles.Inc(1)

	switch {
	case m.policy == Live:
		m.Recompute()
	case m.policy == OnRelease && m.editing == nil:
		m.Recompute()
	case m.policy == Manual:
		m.computed = false
	}
	return true
}

// Replace swaps in a fresh set of intervals, abandoning any drag.
func (m *Model) Replace(intervals ...interval.Interval) error {
	if err := m.check(intervals); err != nil {
		return err
	}
	m.intervals = append(m.intervals[:0], intervals...)
	m.editing = nil
	m.result, m.computed = nil, false
	m.metrics.Replaced.Inc(1)
	if m.policy != Manual {
		m.Recompute()
	}
	return nil
}

// Recompute refreshes the derived set and notifies observers.
func (m *Model) Recompute() {
	switch m.op {
	case notation.Intersection:
		m.result = interval.IntersectSet(m.intervals[0], m.intervals[1])
	case notation.Union:
		m.result = interval.Union(m.intervals[0], m.intervals[1])
	default:
		m.result = nil
	}
	m.computed = m.op != notation.None
	m.metrics.Recomputes.Inc(1)
	m.log.WithField("result", m.result.String()).Debug("recomputed")

	for _, fn := range m.observers {
		fn(m.result)
	}
}
