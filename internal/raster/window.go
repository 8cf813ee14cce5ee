// Package raster plots prime spiral values into 8-bit grayscale images.
//
// The spiral origin maps to the image center and y grows upward, so image
// rows run from the window's top edge (MaxY) down to its bottom edge (MinY).
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/udisondev/ulamspiral/internal/spiral"
)

// MaxSide is the largest window side whose cells all stay within spiral.MaxRing.
const MaxSide = 2*spiral.MaxRing + 1

var (
	// ErrEmptyWindow reports a window with a zero or negative side.
	ErrEmptyWindow = errors.New("raster: empty window")

	// ErrWindowTooLarge reports a window side above MaxSide.
	ErrWindowTooLarge = errors.New("raster: window too large")
)

// Window is a Width x Height rectangle of spiral cells centered on the origin.
// Odd sides are symmetric; even sides extend one cell further toward -x / -y.
type Window struct {
	Width  int
	Height int
}

// NewWindow validates and returns a window.
func NewWindow(width, height int) (Window, error) {
	if width <= 0 || height <= 0 {
		return Window{}, fmt.Errorf("%w: %dx%d", ErrEmptyWindow, width, height)
	}
	if width > MaxSide || height > MaxSide {
		return Window{}, fmt.Errorf("%w: %dx%d exceeds %d", ErrWindowTooLarge, width, height, MaxSide)
	}
	return Window{Width: width, Height: height}, nil
}

// MinX returns the leftmost cell column.
func (w Window) MinX() int { return -(w.Width / 2) }

// MaxX returns the rightmost cell column.
func (w Window) MaxX() int { return w.Width - w.Width/2 - 1 }

// MinY returns the bottom cell row.
func (w Window) MinY() int { return -(w.Height / 2) }

// MaxY returns the top cell row.
func (w Window) MaxY() int { return w.Height - w.Height/2 - 1 }

// Bounds returns the image rectangle for the window.
func (w Window) Bounds() image.Rectangle {
	return image.Rect(0, 0, w.Width, w.Height)
}

// Contains reports whether c lies inside the window.
func (w Window) Contains(c spiral.Coord) bool {
	x, y := int(c.X), int(c.Y)
	return x >= w.MinX() && x <= w.MaxX() && y >= w.MinY() && y <= w.MaxY()
}

// Pixel maps c to image coordinates. ok is false if c is outside the window.
func (w Window) Pixel(c spiral.Coord) (px, py int, ok bool) {
	if !w.Contains(c) {
		return 0, 0, false
	}
	return int(c.X) - w.MinX(), w.MaxY() - int(c.Y), true
}

// CoordAt maps image coordinates back to a spiral cell.
func (w Window) CoordAt(px, py int) spiral.Coord {
	return spiral.NewCoord(int32(px+w.MinX()), int32(w.MaxY()-py))
}

// MaxRing returns the outermost ring touched by the window.
func (w Window) MaxRing() uint32 {
	return uint32(max(w.Width/2, w.Height/2))
}

// sieveLimit returns an upper bound for every value inside the window.
// The last cell of ring R holds (2R+1)^2 - 1 and 2R <= max side.
func (w Window) sieveLimit() uint32 {
	side := uint64(max(w.Width, w.Height)) + 1
	limit := side * side
	if limit > spiral.MaxValue {
		return spiral.MaxValue
	}
	return uint32(limit)
}
