package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestRoundTrip(t *testing.T) {
	m, err := NewMapping(-10, 10, 2, 78)
	require.NoError(t, err)

	for v := -10.0; v <= 10; v += 0.37 {
		got := m.ToValue(m.ToDisplay(v))
		assert.True(t, scalar.EqualWithinAbs(v, got, 1e-9), "%v came back as %v", v, got)
	}
	assert.Equal(t, 2.0, m.ToDisplay(-10))
	assert.InDelta(t, 78.0, m.ToDisplay(10), 1e-9)
	assert.Equal(t, 40, m.Column(0))
}

func TestInvalidMapping(t *testing.T) {
	_, err := NewMapping(1, 1, 0, 10)
	assert.Error(t, err)
	_, err = NewMapping(0, 1, 5, 5)
	assert.Error(t, err)
}

func TestClampAndIntegers(t *testing.T) {
	m, err := NewMapping(-2, 6, 0, 80)
	require.NoError(t, err)
	assert.Equal(t, -2.0, m.Clamp(-7))
	assert.Equal(t, 6.0, m.Clamp(9))
	assert.Equal(t, 1.5, m.Clamp(1.5))
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3, 4, 5, 6}, m.Integers())

	r := m.Resize(10, 50)
	assert.Equal(t, 10.0, r.ToDisplay(-2))
	assert.Equal(t, 0.0, m.ToDisplay(-2))
}
