package spiral

import (
	"fmt"
	"math"
)

// ApproxCoordOf locates v from two diagonal anchors instead of the ring
// decomposition used by CoordOf.
//
// The guess r = round(sqrt(v/4)) places a north-west anchor at (-r, r) and a
// south-east anchor one step off the (r, -r) corner. The anchor with the
// smaller value distance wins (ties keep north-west) and the result is
// walked along that anchor's arm, where values change by 1 per step.
//
// Negative v yields the (0, 0) sentinel. Panics if v exceeds MaxValue.
func ApproxCoordOf(v int64) Coord {
	if v < 0 {
		return Coord{}
	}
	if v > MaxValue {
		panic(fmt.Errorf("%w: value %d", ErrOverflow, v))
	}

	g := math.Sqrt(float64(v) / 4)
	r := int32(math.Round(g))

	nw := Coord{X: -r, Y: r}
	se := southEastAnchor(r, g-math.Floor(g))

	nwDiff := value64(nw, OctantOf(nw)) - v
	seDiff := value64(se, OctantOf(se)) - v

	if abs64(seDiff) > abs64(nwDiff) {
		if nwDiff >= 0 {
			return Coord{X: nw.X + int32(nwDiff), Y: nw.Y}
		}
		return Coord{X: nw.X, Y: nw.Y + int32(nwDiff)}
	}

	// Corrections from the south-east anchor are subtracted.
	if seDiff >= 0 {
		return Coord{X: se.X - int32(seDiff), Y: se.Y}
	}
	return Coord{X: se.X, Y: se.Y - int32(seDiff)}
}

// southEastAnchor picks the south-east reference cell. A fractional part
// below one half means round() went down and the wanted corner belongs to
// the next ring out. frac == 0.5 takes the second branch.
func southEastAnchor(r int32, frac float64) Coord {
	if frac < 0.5 {
		return Coord{X: r + 1, Y: -r}
	}
	return Coord{X: r, Y: 1 - r}
}
