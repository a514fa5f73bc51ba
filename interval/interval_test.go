package interval

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	iv, err := New(Endpoint{0, true}, Endpoint{4, false})
	require.NoError(t, err)
	assert.Equal(t, ClosedOpen(0, 4), iv)

	_, err = New(Endpoint{4, true}, Endpoint{0, true})
	require.Error(t, err)
	assert.Equal(t, ErrDegenerate, errors.Cause(err))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Closed(2, 2).Validate())
	assert.NoError(t, Open(0, 1).Validate())

	err := ClosedOpen(2, 2).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerate))
	assert.Contains(t, err.Error(), "[2, 2[")
}

func TestEmptyAndPoint(t *testing.T) {
	assert.True(t, Closed(1, 1).IsPoint())
	assert.False(t, Closed(1, 1).IsEmpty())
	assert.True(t, OpenClosed(1, 1).IsEmpty())
	assert.False(t, Open(1, 1).IsPoint())
	assert.True(t, Open(1, 1).IsEmpty())
}

func TestContains(t *testing.T) {
	iv := ClosedOpen(0, 4)
	assert.True(t, iv.Contains(0))
	assert.True(t, iv.Contains(3.99))
	assert.False(t, iv.Contains(4))
	assert.False(t, iv.Contains(-0.01))
	assert.True(t, Closed(2, 2).Contains(2))
	assert.False(t, ClosedOpen(2, 2).Contains(2))
}

func TestEndpointAccess(t *testing.T) {
	iv := Closed(-2, 3)
	assert.Equal(t, Endpoint{-2, true}, iv.Endpoint(Low))
	assert.Equal(t, High, Low.Partner())

	iv = iv.WithEndpoint(High, Endpoint{5, false})
	assert.Equal(t, ClosedOpen(-2, 5), iv)
	assert.Equal(t, "high", High.String())
}

func TestFormat(t *testing.T) {
	tests := map[float64]string{
		2.999: "3",
		2.95:  "2.95",
		1.999: "2",
		1.92:  "1.92",
		-0.03: "0",
		-2.5:  "-2.50",
		4:     "4",
		3.04:  "3",
		-1.96: "-1.96",
	}
	for in, want := range tests {
		assert.Equal(t, want, Format(in), "Format(%v)", in)
	}
}

func TestNotate(t *testing.T) {
	assert.Equal(t, "[-2, 3]", Notate(Closed(-2, 3)))
	assert.Equal(t, "[0, 4[", Notate(ClosedOpen(0, 4)))
	assert.Equal(t, "]1.50, 2[", Notate(Open(1.5, 2.001)))
	assert.Equal(t, "∅", Set(nil).String())
	assert.Equal(t, "[0, 2[ ∪ ]2, 4]", Union(ClosedOpen(0, 2), OpenClosed(2, 4)).String())
}
