package spiral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxCoordOfNegativeSentinel(t *testing.T) {
	assert.Equal(t, NewCoord(0, 0), ApproxCoordOf(-1))
	assert.Equal(t, NewCoord(0, 0), ApproxCoordOf(-4_000_000_000))
}

func TestApproxCoordOf(t *testing.T) {
	for v, want := range firstRings {
		assert.Equal(t, want, ApproxCoordOf(int64(v)), "value %d", v)
	}

	tests := []struct {
		v    int64
		want Coord
	}{
		{12489, NewCoord(-1, 56)},
		{2022, NewCoord(20, -22)},
		{576, NewCoord(-12, 12)},
		{3987051, NewCoord(41, -998)},
		{MaxValue, NewCoord(-MaxRing, MaxRing+1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApproxCoordOf(tt.v), "value %d", tt.v)
	}
}

// Odd squares make sqrt(v/4) land exactly on a half, the boundary of the
// south-east anchor choice.
func TestApproxCoordOfHalfBoundary(t *testing.T) {
	for k := int64(0); k < 2000; k++ {
		v := (2*k + 1) * (2*k + 1)
		require.Equal(t, CoordOf(uint32(v)), ApproxCoordOf(v), "value %d", v)
		require.Equal(t, CoordOf(uint32(v-1)), ApproxCoordOf(v-1), "value %d", v-1)
		require.Equal(t, CoordOf(uint32(v+1)), ApproxCoordOf(v+1), "value %d", v+1)
	}
}

func TestSouthEastAnchor(t *testing.T) {
	assert.Equal(t, NewCoord(4, -3), southEastAnchor(3, 0.49))
	assert.Equal(t, NewCoord(3, -2), southEastAnchor(3, 0.5))
	assert.Equal(t, NewCoord(3, -2), southEastAnchor(3, 0.51))
}

func TestApproxCoordOfRoundTrip(t *testing.T) {
	for v := int64(0); v <= 300_000; v++ {
		c := ApproxCoordOf(v)
		require.Equal(t, uint32(v), ValueOf(c), "value %d coord %s", v, c)
	}
}

func TestApproxCoordOfRoundTripNearMax(t *testing.T) {
	for v := int64(MaxValue - 200_000); v <= MaxValue; v++ {
		c := ApproxCoordOf(v)
		require.Equal(t, uint32(v), ValueOf(c), "value %d coord %s", v, c)
	}
}

func TestApproxCoordOfOverflow(t *testing.T) {
	assert.Panics(t, func() { ApproxCoordOf(MaxValue + 1) })
}
