package spiral

import (
	"fmt"
	"strings"
)

// Octant is one of eight 45-degree wedges around the origin, or Center.
// Diagonal octants hold exactly when |x| == |y| != 0.
type Octant uint8

// Octants in clockwise compass order. Adding 4 (mod 8) yields the antipode.
const (
	North Octant = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	Center
)

var octantNames = [...]string{
	North:     "North",
	NorthEast: "NorthEast",
	East:      "East",
	SouthEast: "SouthEast",
	South:     "South",
	SouthWest: "SouthWest",
	West:      "West",
	NorthWest: "NorthWest",
	Center:    "Center",
}

// String returns the octant name.
func (o Octant) String() string {
	if int(o) < len(octantNames) {
		return octantNames[o]
	}
	return fmt.Sprintf("Octant(%d)", uint8(o))
}

// IsValid reports whether o is a declared octant.
func (o Octant) IsValid() bool {
	return o <= Center
}

// IsDiagonal reports whether o is NorthEast, SouthEast, SouthWest or NorthWest.
func (o Octant) IsDiagonal() bool {
	return o < Center && o%2 == 1
}

// IsCardinal reports whether o is North, East, South or West.
func (o Octant) IsCardinal() bool {
	return o < Center && o%2 == 0
}

// Opposite returns the antipodal octant. Center is its own opposite.
func (o Octant) Opposite() Octant {
	if o >= Center {
		return o
	}
	return (o + 4) % 8
}

// ParseOctant parses an octant name, case-insensitively.
func ParseOctant(s string) (Octant, error) {
	for i, name := range octantNames {
		if strings.EqualFold(name, s) {
			return Octant(i), nil
		}
	}
	return Center, fmt.Errorf("unknown octant %q", s)
}

// Quadrants are tested in order, so axis points fall into the first match:
// +Y axis and +X axis into q0, -X axis into q1, -Y axis into q2.
const (
	q0 = iota // x >= 0, y >= 0
	q1        // x <= 0, y >= 0
	q2        // x <= 0, y <= 0
	q3        // x >= 0, y <= 0
)

// Dominance of one axis magnitude over the other.
const (
	yDominant = iota // |y| > |x|
	xDominant        // |x| > |y|
	balanced         // |x| == |y|
)

// octantTable[quadrant][dominance]. Row q and row q+2 are antipodal.
var octantTable = [4][3]Octant{
	q0: {North, East, NorthEast},
	q1: {North, West, NorthWest},
	q2: {South, West, SouthWest},
	q3: {South, East, SouthEast},
}

// OctantOf classifies c by its sign pattern and axis dominance.
func OctantOf(c Coord) Octant {
	if c.IsOrigin() {
		return Center
	}
	return octantTable[quadrant(c)][dominance(c)]
}

func quadrant(c Coord) int {
	switch {
	case c.X >= 0 && c.Y >= 0:
		return q0
	case c.X <= 0 && c.Y >= 0:
		return q1
	case c.X <= 0 && c.Y <= 0:
		return q2
	default:
		return q3
	}
}

func dominance(c Coord) int {
	ax, ay := abs64(int64(c.X)), abs64(int64(c.Y))
	switch {
	case ay > ax:
		return yDominant
	case ax > ay:
		return xDominant
	default:
		return balanced
	}
}
