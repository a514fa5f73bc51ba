package layout

import (
	"slices"
	"sync"
)

type Point struct {
	X, Y int
}

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

func (f Flex) StartLayouting(width, height int) {
	c := context{
		curDimensions: Dimensions{
			Origin: Point{X: 0, Y: 0},
			Width:  width,
			Height: height,
		},
	}
	f.Layout(c)
}

// Layout sizes the items along the main axis and hands each box its
// dimensions, then recurses into nested flexes.
//
// Items whose min size exceeds an equal share of the space are dropped.
// The rest are filled level by level: every item grows together until
// the smallest max is met, then the remaining items continue, until the
// space runs out.
func (f Flex) Layout(c context) {
	dims := c.curDimensions
	total := dims.Width
	if f.Dir == Y {
		total = dims.Height
	}
	if len(f.Items) == 0 || total <= 0 {
		return
	}

	// only render items whose min size is actually met
	smallestPossibleSize := total / len(f.Items)
	itemsToLayout := filter(f.Items, func(i int, item FlexItem) bool { return item.Size.Min.toAbs(total) <= smallestPossibleSize })

	filledSpace := distribute(itemsToLayout, total)

	// items must be layouted in the order they appear in the list, so that the origin is correct
	contextmap := make(map[int]Dimensions, len(itemsToLayout))
	orig := dims.Origin
	for i, item := range itemsToLayout {
		var dim Dimensions
		if f.Dir == Y {
			dim = Dimensions{orig, dims.Width, filledSpace[item.id]}
			orig = Point{orig.X, orig.Y + dim.Height}
		} else {
			dim = Dimensions{orig, filledSpace[item.id], dims.Height}
			orig = Point{orig.X + dim.Width, orig.Y}
		}
		contextmap[i] = dim
		if item.Box != nil {
			item.Box(dim)
		}
	}

	// recursiveley layout flex items
	for i, item := range itemsToLayout {
		if item.Flex != nil {
			item.Flex.Layout(context{contextmap[i]})
		}
	}
}

func distribute(items []FlexItem, total int) map[int]int {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b FlexItem) int {
		return a.Size.Max.toAbs(total) - b.Size.Max.toAbs(total)
	})

	filledSpace := make(map[int]int, len(sorted))
	remainingSpace := total
	level := 0
	for tos, item := range sorted {
		rest := sorted[tos:]
		step := item.Size.Max.toAbs(total) - level
		// if we can raise all remaining items to this max, do so
		if step*len(rest) <= remainingSpace {
			for _, item := range rest {
				filledSpace[item.id] += step
			}
			remainingSpace -= step * len(rest)
			level += step
			continue
		}

		step = remainingSpace / len(rest)
		for _, item := range rest {
			filledSpace[item.id] += step
		}
		break
	}
	return filledSpace
}

func filter[T any](ss []T, test func(i int, t T) bool) (ret []T) {
	for i, s := range ss {
		if test(i, s) {
			ret = append(ret, s)
		}
	}
	return
}

type AutoId struct {
	sync.Mutex
	id int
}

func (a *AutoId) ID() (id int) {
	a.Lock()
	defer a.Unlock()

	id = a.id
	a.id++
	return
}

var ai AutoId

type FlexItem struct {
	id   int
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{id: ai.ID(), Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}

	return int(s.rel * float64(size))
}

type Direction int

const (
	Y Direction = iota
	X
)

type context struct {
	curDimensions Dimensions
}

// Resolve dimensions for a box
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

// Contains reports whether the screen cell (x, y) lies inside d.
func (d Dimensions) Contains(x, y int) bool {
	return x >= d.Origin.X && x < d.Origin.X+d.Width && y >= d.Origin.Y && y < d.Origin.Y+d.Height
}

type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}
