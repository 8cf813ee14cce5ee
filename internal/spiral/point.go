package spiral

// Point is a computed snapshot of one spiral cell.
type Point struct {
	Value  uint32
	Coord  Coord
	Octant Octant
	Prime  bool
}

// PrimeTester answers primality for spiral values.
type PrimeTester interface {
	IsPrime(v uint32) bool
}

// PrimeFunc adapts a plain function to PrimeTester.
type PrimeFunc func(v uint32) bool

// IsPrime calls f(v).
func (f PrimeFunc) IsPrime(v uint32) bool {
	return f(v)
}
