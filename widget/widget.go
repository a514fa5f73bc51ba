// Package widget binds an interval model to a number line: domain mapping,
// row layout, hit testing and the quiz actions.
package widget

import (
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"

	"numline/geometry"
	"numline/interval"
	"numline/model"
	"numline/notation"
)

// margin keeps tick labels such as "-10" inside the pane.
const margin = 3

// Track is the display style of one interval row.
type Track struct {
	Color  string
	Weight int
}

type Options struct {
	MinGap    float64
	Tolerance int
	Tracks    [2]Track
	Result    Track
	Label     Track
	Rand      Randomizer
	Log       *log.Logger
	Scope     tally.Scope
}

type Widget struct {
	Spec
	ID      uuid.UUID
	Model   *model.Model
	Mapping geometry.Mapping

	opts Options
	log  *log.Entry
}

func New(spec Spec, opts Options) (*Widget, error) {
	if opts.Log == nil {
		opts.Log = log.StandardLogger()
	}
	if opts.Scope == nil {
		opts.Scope = tally.NoopScope
	}
	id := uuid.New()
	entry := opts.Log.WithFields(log.Fields{"widget": spec.Kind, "id": id.String()})

	initial := spec.Initial
	if spec.Random {
		if opts.Rand == nil {
			return nil, errors.Errorf("widget %v needs a randomizer", spec.Kind)
		}
		lo, hi := integerRange(spec.DomainMin, spec.DomainMax)
		initial = []interval.Interval{opts.Rand.Interval(lo, hi), opts.Rand.Interval(lo, hi)}
	}

	m, err := model.New(spec.Op, spec.Policy, entry, opts.Scope.Tagged(map[string]string{"widget": string(spec.Kind)}), initial...)
	if err != nil {
		return nil, errors.Wrapf(err, "widget %v", spec.Kind)
	}
	mapping, err := geometry.NewMapping(spec.DomainMin, spec.DomainMax, margin, margin+1)
	if err != nil {
		return nil, errors.Wrapf(err, "widget %v", spec.Kind)
	}

	w := &Widget{Spec: spec, ID: id, Model: m, Mapping: mapping, opts: opts, log: entry}
	entry.WithField("intervals", m.Intervals()).Info("widget created")
	return w, nil
}

// SetOptions applies reloaded display and editing settings. The
// randomizer, logger and scope stay as they were.
func (w *Widget) SetOptions(minGap float64, tolerance int, tracks [2]Track, result, label Track) {
	w.opts.MinGap, w.opts.Tolerance = minGap, tolerance
	w.opts.Tracks, w.opts.Result, w.opts.Label = tracks, result, label
}

func (w *Widget) TrackStyle(track int) Track { return w.opts.Tracks[track] }
func (w *Widget) ResultStyle() Track { return w.opts.Result }
func (w *Widget) LabelStyle() Track { return w.opts.Label }

// Bounds returns the constraints for dragging an endpoint.
func (w *Widget) Bounds() model.Bounds {
	return model.Bounds{Min: w.DomainMin, Max: w.DomainMax, MinGap: w.opts.MinGap}
}

// Resize maps the domain onto a pane width columns wide.
func (w *Widget) Resize(width int) {
	right := width - 1 - margin
	if right <= margin {
		right = margin + 1
	}
	w.Mapping = w.Mapping.Resize(margin, float64(right))
}

// Rows of the pane, top to bottom: the derived result, a gap, one row per
// interval, the axis, its tick labels and the endpoint labels.
const ResultRow = 0

func (w *Widget) TrackRow(track int) int { return 2 + track }
func (w *Widget) AxisRow() int { return 2 + w.Model.Len() }
func (w *Widget) TickRow() int { return w.AxisRow() + 1 }
func (w *Widget) LabelRow() int { return w.AxisRow() + 2 }

// Height is the number of rows the widget draws on.
func (w *Widget) Height() int {
	return w.LabelRow() + 1
}

// ValueAt converts a pane column to a domain value. Columns past either
// end of the axis give the nearest domain bound.
func (w *Widget) ValueAt(col int) float64 {
	return w.Mapping.Clamp(w.Mapping.ToValue(float64(col)))
}

// HitTest returns the endpoint drawn nearest to (col, row), if one lies
// within the tolerance. When two endpoints share a column the pointer side
// decides: at or right of it picks the high endpoint.
func (w *Widget) HitTest(col, row int) (model.Handle, bool) {
	var (
		best     model.Handle
		bestDist = math.MaxInt
	)
	for _, h := range w.Model.Handles() {
		if w.TrackRow(h.Track) != row {
			continue
		}
		c := w.Mapping.Column(w.Model.Endpoint(h).Value)
		d := col - c
		if d < 0 {
			d = -d
		}
		if d > w.opts.Tolerance {
			continue
		}
		if d < bestDist || (d == bestDist && h.Side == interval.High && col >= c) {
			best, bestDist = h, d
		}
	}
	return best, bestDist != math.MaxInt
}

// Generate replaces the intervals of a random widget.
func (w *Widget) Generate() (bool, error) {
	if !w.Random {
		return false, nil
	}
	lo, hi := integerRange(w.DomainMin, w.DomainMax)
	if err := w.Model.Replace(w.opts.Rand.Interval(lo, hi), w.opts.Rand.Interval(lo, hi)); err != nil {
		return false, errors.Wrapf(err, "widget %v", w.Kind)
	}
	w.log.WithField("intervals", w.Model.Intervals()).Info("generated")
	return true, nil
}

// Compute refreshes the result of a manual widget.
func (w *Widget) Compute() bool {
	if w.Policy != model.Manual {
		return false
	}
	w.Model.Recompute()
	return true
}

func (w *Widget) Notation(style notation.Style) string {
	res, computed := w.Model.Result()
	return style.Expression(w.Op, w.Model.Intervals(), res, computed)
}

// Publish hands the current notation to a sink.
func (w *Widget) Publish(sink notation.Sink, style notation.Style) {
	sink.SetNotation(w.Notation(style))
}
