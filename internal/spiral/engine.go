package spiral

import "fmt"

// Engine is the query surface over the spiral mappings.
// Thread-safe: it holds no mutable state.
type Engine struct {
	primes PrimeTester
}

// NewEngine creates an Engine. primes may be nil, in which case
// Point.Prime is always false.
func NewEngine(primes PrimeTester) *Engine {
	return &Engine{primes: primes}
}

// Octant returns the octant of c.
func (e *Engine) Octant(c Coord) Octant {
	return OctantOf(c)
}

// Value returns the value at c.
func (e *Engine) Value(c Coord) (uint32, error) {
	return CheckedValueOf(c)
}

// Coord returns the coordinate of v using the ring decomposition.
func (e *Engine) Coord(v uint32) Coord {
	return CoordOf(v)
}

// Lookup returns the coordinate of v using the anchor-corrected inverse.
// Unlike ApproxCoordOf it rejects negative values instead of returning
// the origin sentinel.
func (e *Engine) Lookup(v int64) (Coord, error) {
	if v < 0 {
		return Coord{}, fmt.Errorf("looking up %d: %w", v, ErrNegativeValue)
	}
	if v > MaxValue {
		return Coord{}, fmt.Errorf("looking up %d: %w", v, ErrOverflow)
	}
	return ApproxCoordOf(v), nil
}

// Point returns the full snapshot for coordinate c.
func (e *Engine) Point(c Coord) (Point, error) {
	v, err := CheckedValueOf(c)
	if err != nil {
		return Point{}, fmt.Errorf("computing point %s: %w", c, err)
	}
	return e.point(v, c), nil
}

// PointAt returns the full snapshot for value v.
func (e *Engine) PointAt(v uint32) Point {
	return e.point(v, CoordOf(v))
}

func (e *Engine) point(v uint32, c Coord) Point {
	p := Point{
		Value:  v,
		Coord:  c,
		Octant: OctantOf(c),
	}
	if e.primes != nil {
		p.Prime = e.primes.IsPrime(v)
	}
	return p
}
