// Package notation writes interval expressions for display, either as
// plain Unicode text or as TeX for a typesetting sink.
package notation

import (
	"strings"

	"numline/interval"
)

// Op is the operation shown between the two operands.
type Op int

const (
	None Op = iota
	Intersection
	Union
)

func (o Op) String() string {
	switch o {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	}
	return "none"
}

// Style selects the symbols of an expression.
type Style struct {
	Cup, Cap, Empty string
	Open, Close     string
}

var (
	Plain = Style{Cup: " ∪ ", Cap: " ∩ ", Empty: "∅"}
	TeX   = Style{Cup: ` \cup `, Cap: ` \cap `, Empty: `\emptyset`, Open: `\( `, Close: ` \)`}
)

// Sink receives finished notation strings.
type Sink interface {
	SetNotation(string)
}

func (s Style) Set(set interval.Set) string {
	if set.IsEmpty() {
		return s.Empty
	}
	parts := make([]string, len(set))
	for n, i := range set {
		parts[n] = interval.Notate(i)
	}
	return strings.Join(parts, s.Cup)
}

func (s Style) symbol(op Op) string {
	if op == Union {
		return s.Cup
	}
	return s.Cap
}

// Expression writes "A op B = result". With op None or fewer than two
// operands only the operands are written. A nil result with computed
// false leaves the right hand side blank, as before a manual compute.
func (s Style) Expression(op Op, operands []interval.Interval, result interval.Set, computed bool) string {
	var b strings.Builder
	b.WriteString(s.Open)
	for n, i := range operands {
		if n > 0 {
			if op == None {
				b.WriteString(", ")
			} else {
				b.WriteString(s.symbol(op))
			}
		}
		b.WriteString(interval.Notate(i))
	}
	if op != None && len(operands) > 1 {
		b.WriteString(" = ")
		if computed {
			b.WriteString(s.Set(result))
		} else {
			b.WriteString("?")
		}
	}
	b.WriteString(s.Close)
	return b.String()
}
