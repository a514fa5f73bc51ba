package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numline/interval"
	"numline/model"
	"numline/notation"
)

type queue struct {
	next []interval.Interval
	lo   []int
	hi   []int
}

func (q *queue) Interval(lo, hi int) interval.Interval {
	q.lo, q.hi = append(q.lo, lo), append(q.hi, hi)
	iv := q.next[0]
	q.next = q.next[1:]
	return iv
}

type line struct{ text string }

func (l *line) SetNotation(s string) { l.text = s }

func opts(r Randomizer) Options {
	return Options{
		MinGap:    0.1,
		Tolerance: 1,
		Tracks:    [2]Track{{"blue", 6}, {"green", 8}},
		Result:    Track{"fuchsia", 8},
		Label:     Track{Color: "silver"},
		Rand:      r,
	}
}

func newWidget(t *testing.T, kind Kind, r Randomizer) *Widget {
	spec, ok := Lookup(kind)
	require.True(t, ok)
	w, err := New(spec, opts(r))
	require.NoError(t, err)
	w.Resize(83)
	return w
}

func TestHitTest(t *testing.T) {
	w := newWidget(t, Union, nil)

	tests := []struct {
		col, row int
		want     model.Handle
		hit      bool
	}{
		{col: 33, row: 2, want: model.Handle{Track: 0, Side: interval.Low}, hit: true},
		{col: 34, row: 2, want: model.Handle{Track: 0, Side: interval.Low}, hit: true},
		{col: 53, row: 2, want: model.Handle{Track: 0, Side: interval.High}, hit: true},
		{col: 41, row: 3, want: model.Handle{Track: 1, Side: interval.Low}, hit: true},
		{col: 56, row: 3, want: model.Handle{Track: 1, Side: interval.High}, hit: true},
		{col: 45, row: 2},
		{col: 33, row: 3},
		{col: 33, row: w.AxisRow()},
	}
	for _, tt := range tests {
		h, ok := w.HitTest(tt.col, tt.row)
		assert.Equal(t, tt.hit, ok, "(%d, %d)", tt.col, tt.row)
		if tt.hit {
			assert.Equal(t, tt.want, h, "(%d, %d)", tt.col, tt.row)
		}
	}
}

func TestHitTestSharedColumn(t *testing.T) {
	w := newWidget(t, Union, nil)
	h := model.Handle{Track: 0, Side: interval.Low}
	require.True(t, w.Model.BeginEdit(h))
	w.Model.MoveEndpoint(h, 10, w.Bounds())
	w.Model.EndEdit()
	// [2.9, 3] fits in one column
	c := w.Mapping.Column(3)
	require.Equal(t, c, w.Mapping.Column(w.Model.Endpoint(h).Value))

	got, ok := w.HitTest(c, w.TrackRow(0))
	require.True(t, ok)
	assert.Equal(t, interval.High, got.Side)
	got, ok = w.HitTest(c-1, w.TrackRow(0))
	require.True(t, ok)
	assert.Equal(t, interval.Low, got.Side)
}

func TestDragThroughMapping(t *testing.T) {
	w := newWidget(t, Union, nil)
	line := &line{}

	h, ok := w.HitTest(52, w.TrackRow(0))
	require.True(t, ok)
	require.True(t, w.Model.BeginEdit(h))
	w.Model.MoveEndpoint(h, w.ValueAt(w.Mapping.Column(5)), w.Bounds())
	w.Publish(line, notation.Plain)
	assert.Equal(t, "[-2, 5] ∪ [0, 4[ = [-2, 4[", line.text, "union waits for the release")

	w.Model.EndEdit()
	w.Publish(line, notation.Plain)
	assert.Equal(t, "[-2, 5] ∪ [0, 4[ = [-2, 5]", line.text)
}

func TestQuiz(t *testing.T) {
	q := &queue{next: []interval.Interval{
		interval.Closed(-1, 1), interval.Open(3, 5),
		interval.ClosedOpen(0, 2), interval.Closed(2, 6),
	}}
	w := newWidget(t, QuizIntersect, q)
	assert.Equal(t, []int{-2, -2}, q.lo)
	assert.Equal(t, []int{6, 6}, q.hi)
	assert.Equal(t, "[-1, 1] ∩ ]3, 5[ = ?", w.Notation(notation.Plain))

	assert.True(t, w.Compute())
	assert.Equal(t, "[-1, 1] ∩ ]3, 5[ = ∅", w.Notation(notation.Plain))

	ok, err := w.Generate()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[0, 2[ ∩ [2, 6] = ?", w.Notation(notation.Plain))
	w.Compute()
	assert.Equal(t, `\( [0, 2[ \cap [2, 6] = \emptyset \)`, w.Notation(notation.TeX))
}

func TestUnionQuizRange(t *testing.T) {
	q := &queue{next: []interval.Interval{interval.Closed(-2, 9), interval.Open(9, 10)}}
	w := newWidget(t, QuizUnion, q)
	assert.Equal(t, []int{-2, -2}, q.lo)
	assert.Equal(t, []int{10, 10}, q.hi)
	assert.Equal(t, -2.0, w.ValueAt(0))
	assert.Equal(t, 10.0, w.ValueAt(200))

	r := NewRandomizer(3, 4)
	for n := 0; n < 200; n++ {
		iv := r.Interval(-2, 10)
		assert.LessOrEqual(t, iv.Low.Value, 9.0)
		assert.GreaterOrEqual(t, iv.High.Value, iv.Low.Value+1)
		assert.LessOrEqual(t, iv.High.Value, 10.0)
	}
}

func TestNonQuizIgnoresActions(t *testing.T) {
	w := newWidget(t, Intersect, nil)
	ok, err := w.Generate()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, w.Compute())
	assert.Equal(t, "[-2, 3] ∩ [0, 4[ = [0, 3]", w.Notation(notation.Plain))
}

func TestRandomWidgetNeedsRandomizer(t *testing.T) {
	spec, _ := Lookup(QuizUnion)
	_, err := New(spec, Options{})
	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	w := newWidget(t, Create, nil)
	assert.Equal(t, 2, w.TrackRow(0))
	assert.Equal(t, 3, w.AxisRow())
	assert.Equal(t, 6, w.Height())

	u := newWidget(t, Union, nil)
	assert.Equal(t, 4, u.AxisRow())
	assert.InDelta(t, 0, u.ValueAt(41), 1e-9)
}

func TestRandomizer(t *testing.T) {
	r := NewRandomizer(1, 2)
	closed := map[bool]int{}
	for n := 0; n < 500; n++ {
		iv := r.Interval(-10, 10)
		require.NoError(t, iv.Validate())
		assert.GreaterOrEqual(t, iv.Low.Value, -10.0)
		assert.LessOrEqual(t, iv.High.Value, 10.0)
		assert.Less(t, iv.Low.Value, iv.High.Value)
		assert.Equal(t, float64(int(iv.Low.Value)), iv.Low.Value)
		closed[iv.Low.Closed]++
		closed[iv.High.Closed]++
	}
	assert.NotZero(t, closed[true])
	assert.NotZero(t, closed[false])

	iv := r.Interval(3, 3)
	assert.Equal(t, 3.0, iv.Low.Value)
	assert.Equal(t, 4.0, iv.High.Value)
}
