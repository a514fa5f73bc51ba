package widget

import (
	"numline/interval"
	"numline/model"
	"numline/notation"
)

type Kind string

const (
	Create        Kind = "create"
	Intersect     Kind = "intersect"
	Union         Kind = "union"
	QuizIntersect Kind = "quiz-intersect"
	QuizUnion     Kind = "quiz-union"
)

// Spec describes one widget before it is bound to a model.
type Spec struct {
	Kind                 Kind
	Title                string
	DomainMin, DomainMax float64
	Op                   notation.Op
	Policy               model.Policy
	Initial              []interval.Interval
	// Random widgets start from and regenerate random intervals.
	Random bool
	// Labels prints endpoint values under the axis.
	Labels bool
}

// Catalog lists the widgets in the order they are cycled through.
func Catalog() []Spec {
	return []Spec{
		{
			Kind: Create, Title: "Build an interval",
			DomainMin: -2, DomainMax: 6,
			Op: notation.None, Policy: model.Live,
			Initial: []interval.Interval{interval.Closed(2, 4)},
			Labels:  true,
		},
		{
			Kind: Intersect, Title: "Intersection",
			DomainMin: -2, DomainMax: 6,
			Op: notation.Intersection, Policy: model.Live,
			Initial: []interval.Interval{interval.Closed(-2, 3), interval.ClosedOpen(0, 4)},
		},
		{
			Kind: Union, Title: "Union",
			DomainMin: -10, DomainMax: 10,
			Op: notation.Union, Policy: model.OnRelease,
			Initial: []interval.Interval{interval.Closed(-2, 3), interval.ClosedOpen(0, 4)},
		},
		{
			Kind: QuizIntersect, Title: "Intersection quiz",
			DomainMin: -2, DomainMax: 6,
			Op: notation.Intersection, Policy: model.Manual,
			Random: true,
		},
		{
			Kind: QuizUnion, Title: "Union quiz",
			DomainMin: -2, DomainMax: 10,
			Op: notation.Union, Policy: model.Manual,
			Random: true,
		},
	}
}

// Lookup finds a catalog entry by kind.
func Lookup(kind Kind) (Spec, bool) {
	for _, s := range Catalog() {
		if s.Kind == kind {
			return s, true
		}
	}
	return Spec{}, false
}
