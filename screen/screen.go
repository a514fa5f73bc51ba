// Package screen draws render commands and text onto a tcell screen.
package screen

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"numline/layout"
	"numline/render"
)

var (
	DefaultStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	LightStyle   = DefaultStyle.Foreground(tcell.ColorGray)
	BoldStyle    = DefaultStyle.Bold(true)
)

const (
	axisRune   = '─'
	arrowRune  = '▶'
	tickRune   = '┼'
	filledRune = '●'
	hollowRune = '○'
)

// StyleFor resolves a render style to a tcell style. Unknown colour names
// fall back to the terminal default.
func StyleFor(rs render.Style) tcell.Style {
	if rs.Color == "" {
		return DefaultStyle
	}
	return DefaultStyle.Foreground(tcell.GetColor(rs.Color))
}

func segmentRune(weight int) rune {
	switch {
	case weight <= 2:
		return '─'
	case weight <= 6:
		return '━'
	}
	return '█'
}

// DrawText writes text inside the box (x1, y1)-(x2, y2), wrapping at x2.
func DrawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row, col := y1, x1
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
		if col > x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
	}
}

// DrawBox frames (x1, y1)-(x2, y2) and writes text inside it.
func DrawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	for row := y1; row <= y2; row++ {
		for col := x1; col <= x2; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
		s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
		s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
		s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	}

	DrawText(s, x1+1, y1+1, x2-1, y2-1, style, text)
}

// Pane is a render sink covering one layout box.
type Pane struct {
	Screen tcell.Screen
	Dims   layout.Dimensions
}

func (p Pane) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= p.Dims.Width || row >= p.Dims.Height {
		return
	}
	p.Screen.SetContent(p.Dims.Origin.X+col, p.Dims.Origin.Y+row, r, nil, style)
}

func (p Pane) text(center, row int, text string, style tcell.Style) {
	runes := []rune(text)
	col := center - len(runes)/2
	for n, r := range runes {
		p.set(col+n, row, r, style)
	}
}

func cell(pos float64) int {
	return int(math.Round(pos))
}

func (p Pane) Draw(cmds []render.Command) {
	for _, c := range cmds {
		switch c := c.(type) {
		case render.Axis:
			st := StyleFor(c.Style)
			for col := cell(c.From); col < cell(c.To); col++ {
				p.set(col, c.Row, axisRune, st)
			}
			p.set(cell(c.To), c.Row, arrowRune, st)
		case render.Tick:
			st := StyleFor(c.Style)
			p.set(cell(c.At), c.Row, tickRune, st)
			p.text(cell(c.At), c.Row+1, c.Label, st)
		case render.Segment:
			r := segmentRune(c.Style.Weight)
			for col := cell(c.From); col <= cell(c.To); col++ {
				p.set(col, c.Row, r, StyleFor(c.Style))
			}
		case render.Disk:
			r := hollowRune
			if c.Filled {
				r = filledRune
			}
			p.set(cell(c.At), c.Row, r, StyleFor(c.Style))
		case render.Label:
			p.text(cell(c.At), c.Row, c.Text, StyleFor(c.Style))
		}
	}
}

// Line is a one-row notation sink.
type Line struct {
	text string
}

func (l *Line) SetNotation(s string) { l.text = s }

func (l *Line) Text() string { return l.text }

func (l *Line) Draw(s tcell.Screen, dims layout.Dimensions, style tcell.Style) {
	x, y := dims.Origin.X, dims.Origin.Y
	DrawText(s, x, y, x+dims.Width-1, y, style, l.text)
}
