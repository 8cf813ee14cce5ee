package spiral

import "fmt"

// Ring n adds 8n cells to the spiral. Each octant polynomial below is
// quadratic in the dominant coordinate and linear along the arm, so the
// value changes by exactly 1 per unit step within one arm.

// value64 evaluates the polynomial selected by o without range checks.
// |x|, |y| must not exceed 2^30 or 4n^2 overflows int64.
func value64(c Coord, o Octant) int64 {
	x, y := int64(c.X), int64(c.Y)
	switch o {
	case North:
		return 4*y*y - y - x
	case East:
		return 4*x*x - 3*x + y
	case South:
		return 4*y*y - 3*y + x
	case West:
		return 4*x*x - x - y
	case NorthWest:
		return 4 * x * x
	case NorthEast:
		return 4*x*x - 2*x
	case SouthWest:
		return 4*x*x + 2*abs64(x)
	case SouthEast:
		return 4*x*x + 4*x
	default:
		return 0
	}
}

// CheckedValueOf returns the spiral value at c.
// Returns ErrOverflow when the value does not fit uint32.
func CheckedValueOf(c Coord) (uint32, error) {
	if c.Ring() > overflowRing {
		return 0, fmt.Errorf("%w: coordinate %s", ErrOverflow, c)
	}
	v := value64(c, OctantOf(c))
	if v < 0 || v > MaxValue {
		return 0, fmt.Errorf("%w: coordinate %s", ErrOverflow, c)
	}
	return uint32(v), nil
}

// ValueOf returns the spiral value at c.
// Panics if the value does not fit uint32; use CheckedValueOf for
// coordinates that are not bounded by MaxRing.
func ValueOf(c Coord) uint32 {
	v, err := CheckedValueOf(c)
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOfXY is ValueOf(Coord{x, y}).
func ValueOfXY(x, y int32) uint32 {
	return ValueOf(Coord{X: x, Y: y})
}
