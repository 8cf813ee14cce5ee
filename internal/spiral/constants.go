package spiral

import (
	"errors"
	"math"
)

// Value domain limits.
const (
	// MaxRing is the largest ring whose every cell fits a uint32 value.
	// The last cell of ring n holds (2n+1)^2 - 1.
	MaxRing = 32767

	// MaxValue is the largest value the spiral carries.
	MaxValue = math.MaxUint32

	// overflowRing is the first ring where 4n^2 no longer fits uint32.
	overflowRing = MaxRing + 1
)

var (
	// ErrOverflow reports a coordinate or value outside the uint32 spiral domain.
	ErrOverflow = errors.New("spiral: value out of uint32 range")

	// ErrNegativeValue reports a negative value passed to a strict inverse lookup.
	ErrNegativeValue = errors.New("spiral: negative value")
)
