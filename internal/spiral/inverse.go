package spiral

import (
	"fmt"
	"math"
)

// CoordOf returns the coordinate holding value v.
//
// With n = floor(sqrt(v)) and diff = v - n^2, the run of 2n+1 values
// n^2..(n+1)^2-1 is split into two arcs; odd n runs along the east then
// north edge, even n along the west then south edge. Divisions truncate
// toward zero, which matters for the negative numerators below.
func CoordOf(v uint32) Coord {
	n := isqrt(v)
	diff := int64(v) - n*n

	var x, y int64
	if n%2 == 1 {
		if diff < n {
			x = (n + 1) / 2
			y = (1-n)/2 + diff
		} else {
			x = (3*n+1)/2 - diff
			y = (n + 1) / 2
		}
	} else {
		if diff < n {
			x = -n / 2
			y = n/2 - diff
		} else {
			x = (-3*n)/2 + diff
			y = -n / 2
		}
	}
	return Coord{X: int32(x), Y: int32(y)}
}

// RingOf returns the ring holding value v.
func RingOf(v uint32) uint32 {
	return uint32((isqrt(v) + 1) / 2)
}

// RingBounds returns the first and last value on ring n.
// The last value is clamped to MaxValue on the partially representable ring.
func RingBounds(n uint32) (first, last uint32, err error) {
	if n == 0 {
		return 0, 0, nil
	}
	if n > overflowRing {
		return 0, 0, fmt.Errorf("%w: ring %d", ErrOverflow, n)
	}
	side := 2*int64(n) - 1
	lo := side * side
	hi := (side+2)*(side+2) - 1
	if hi > MaxValue {
		hi = MaxValue
	}
	return uint32(lo), uint32(hi), nil
}

// isqrt returns floor(sqrt(v)). The float estimate is corrected so that
// n^2 <= v < (n+1)^2 holds exactly.
func isqrt(v uint32) int64 {
	n := int64(math.Sqrt(float64(v)))
	for n*n > int64(v) {
		n--
	}
	for (n+1)*(n+1) <= int64(v) {
		n++
	}
	return n
}
