// Package geometry maps interval values onto a display axis and back.
package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Mapping is an affine map between the value domain [DomainMin, DomainMax]
// and the display range [DisplayMin, DisplayMax].
type Mapping struct {
	DomainMin, DomainMax   float64
	DisplayMin, DisplayMax float64
}

func NewMapping(domainMin, domainMax, displayMin, displayMax float64) (Mapping, error) {
	if !(domainMin < domainMax) {
		return Mapping{}, errors.Errorf("empty domain [%v, %v]", domainMin, domainMax)
	}
	if displayMin == displayMax {
		return Mapping{}, errors.Errorf("display range collapses at %v", displayMin)
	}
	return Mapping{domainMin, domainMax, displayMin, displayMax}, nil
}

func (m Mapping) scale() float64 {
	return (m.DisplayMax - m.DisplayMin) / (m.DomainMax - m.DomainMin)
}

func (m Mapping) ToDisplay(v float64) float64 {
	return m.DisplayMin + (v-m.DomainMin)*m.scale()
}

func (m Mapping) ToValue(p float64) float64 {
	return m.DomainMin + (p-m.DisplayMin)/m.scale()
}

// Column is the terminal cell nearest to v.
func (m Mapping) Column(v float64) int {
	return int(math.Round(m.ToDisplay(v)))
}

// Clamp limits v to the domain.
func (m Mapping) Clamp(v float64) float64 {
	return math.Max(m.DomainMin, math.Min(m.DomainMax, v))
}

// Resize keeps the domain and moves the display range.
func (m Mapping) Resize(displayMin, displayMax float64) Mapping {
	m.DisplayMin, m.DisplayMax = displayMin, displayMax
	return m
}

// Integers lists the whole numbers inside the domain, where ticks go.
func (m Mapping) Integers() []int {
	var out []int
	for i := int(math.Ceil(m.DomainMin)); float64(i) <= m.DomainMax; i++ {
		out = append(out, i)
	}
	return out
}
