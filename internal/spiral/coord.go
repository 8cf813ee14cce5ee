package spiral

import "fmt"

// Coord is a cell on the spiral plane. Y grows upward.
type Coord struct {
	X int32
	Y int32
}

// NewCoord returns the coordinate (x, y).
func NewCoord(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// IsOrigin reports whether c is (0, 0).
func (c Coord) IsOrigin() bool {
	return c.X == 0 && c.Y == 0
}

// Ring returns the Chebyshev distance from the origin, max(|x|, |y|).
func (c Coord) Ring() uint32 {
	ax, ay := abs64(int64(c.X)), abs64(int64(c.Y))
	if ax > ay {
		return uint32(ax)
	}
	return uint32(ay)
}

// Neg returns the point reflected through the origin.
// Caller must not pass math.MinInt32 components.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
