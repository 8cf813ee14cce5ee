package spiral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctantOf(t *testing.T) {
	tests := []struct {
		name string
		c    Coord
		want Octant
	}{
		{"origin", NewCoord(0, 0), Center},
		{"+y axis", NewCoord(0, 1), North},
		{"-y axis", NewCoord(0, -1), South},
		{"+x axis", NewCoord(1, 0), East},
		{"-x axis", NewCoord(-1, 0), West},
		{"ne diagonal", NewCoord(1, 1), NorthEast},
		{"nw diagonal", NewCoord(-1, 1), NorthWest},
		{"sw diagonal", NewCoord(-1, -1), SouthWest},
		{"se diagonal", NewCoord(1, -1), SouthEast},
		{"north wedge q1", NewCoord(3, 7), North},
		{"north wedge q2", NewCoord(-3, 7), North},
		{"east wedge q1", NewCoord(7, 3), East},
		{"east wedge q4", NewCoord(7, -3), East},
		{"south wedge q3", NewCoord(-3, -7), South},
		{"south wedge q4", NewCoord(3, -7), South},
		{"west wedge q2", NewCoord(-7, 3), West},
		{"west wedge q3", NewCoord(-7, -3), West},
		{"far diagonal", NewCoord(-998, -998), SouthWest},
		{"int32 extremes", NewCoord(-2147483648, 2147483647), West},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OctantOf(tt.c))
		})
	}
}

func TestOctantAntipodalSymmetry(t *testing.T) {
	for x := int32(-40); x <= 40; x++ {
		for y := int32(-40); y <= 40; y++ {
			c := NewCoord(x, y)
			if c.IsOrigin() {
				continue
			}
			require.Equal(t, OctantOf(c).Opposite(), OctantOf(c.Neg()), "coord %s", c)
		}
	}
}

func TestOctantDiagonalIffBalanced(t *testing.T) {
	for x := int32(-25); x <= 25; x++ {
		for y := int32(-25); y <= 25; y++ {
			c := NewCoord(x, y)
			o := OctantOf(c)
			balanced := abs64(int64(x)) == abs64(int64(y)) && !c.IsOrigin()
			require.Equal(t, balanced, o.IsDiagonal(), "coord %s octant %s", c, o)
			require.Equal(t, !balanced && !c.IsOrigin(), o.IsCardinal(), "coord %s octant %s", c, o)
		}
	}
}

func TestOctantOpposite(t *testing.T) {
	pairs := map[Octant]Octant{
		North:     South,
		East:      West,
		NorthEast: SouthWest,
		SouthEast: NorthWest,
	}
	for a, b := range pairs {
		assert.Equal(t, b, a.Opposite(), a.String())
		assert.Equal(t, a, b.Opposite(), b.String())
	}
	assert.Equal(t, Center, Center.Opposite())
}

func TestOctantString(t *testing.T) {
	assert.Equal(t, "NorthWest", NorthWest.String())
	assert.Equal(t, "Center", Center.String())
	assert.Equal(t, "Octant(42)", Octant(42).String())
	assert.False(t, Octant(42).IsValid())
}

func TestParseOctant(t *testing.T) {
	for o := North; o <= Center; o++ {
		got, err := ParseOctant(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	got, err := ParseOctant("southwest")
	require.NoError(t, err)
	assert.Equal(t, SouthWest, got)

	_, err = ParseOctant("up")
	assert.Error(t, err)
}
