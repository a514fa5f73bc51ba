// Package render turns a widget into draw commands for a sink. Positions
// are display coordinates from the widget's mapping; rows are pane rows.
package render

import (
	"strconv"

	"numline/geometry"
	"numline/interval"
	"numline/widget"
)

type Style struct {
	Color  string
	Weight int
}

type Command interface {
	command()
}

// Axis is the number line itself, with an arrow at its right end.
type Axis struct {
	From, To float64
	Row      int
	Style    Style
}

// Tick marks an integer on the axis and writes it one row below.
type Tick struct {
	At    float64
	Row   int
	Label string
	Style Style
}

type Segment struct {
	From, To float64
	Row      int
	Style    Style
}

// Disk marks an endpoint: filled when closed, hollow when open.
type Disk struct {
	At     float64
	Row    int
	Filled bool
	Style  Style
}

type Label struct {
	At    float64
	Row   int
	Text  string
	Style Style
}

func (Axis) command()    {}
func (Tick) command()    {}
func (Segment) command() {}
func (Disk) command()    {}
func (Label) command()   {}

type Sink interface {
	Draw(cmds []Command)
}

func style(t widget.Track) Style {
	return Style{Color: t.Color, Weight: t.Weight}
}

func intervalCommands(m geometry.Mapping, iv interval.Interval, row int, s Style) []Command {
	lo, hi := m.ToDisplay(iv.Low.Value), m.ToDisplay(iv.High.Value)
	return []Command{
		Segment{From: lo, To: hi, Row: row, Style: s},
		Disk{At: lo, Row: row, Filled: iv.Low.Closed, Style: s},
		Disk{At: hi, Row: row, Filled: iv.High.Closed, Style: s},
	}
}

// Scene draws the axis, its integer ticks, every interval on its own row
// and, once computed, the derived set on the result row.
func Scene(w *widget.Widget, axis Style) []Command {
	m := w.Mapping
	cmds := []Command{Axis{From: m.DisplayMin, To: m.DisplayMax, Row: w.AxisRow(), Style: axis}}
	for _, i := range m.Integers() {
		cmds = append(cmds, Tick{At: m.ToDisplay(float64(i)), Row: w.AxisRow(), Label: strconv.Itoa(i), Style: axis})
	}

	for n := 0; n < w.Model.Len(); n++ {
		iv := w.Model.Interval(n)
		cmds = append(cmds, intervalCommands(m, iv, w.TrackRow(n), style(w.TrackStyle(n)))...)
		if w.Labels {
			ls := style(w.LabelStyle())
			cmds = append(cmds,
				Label{At: m.ToDisplay(iv.Low.Value), Row: w.LabelRow(), Text: interval.Format(iv.Low.Value), Style: ls},
				Label{At: m.ToDisplay(iv.High.Value), Row: w.LabelRow(), Text: interval.Format(iv.High.Value), Style: ls},
			)
		}
	}

	if res, ok := w.Model.Result(); ok {
		for _, iv := range res {
			cmds = append(cmds, intervalCommands(m, iv, widget.ResultRow, style(w.ResultStyle()))...)
		}
	}
	return cmds
}
