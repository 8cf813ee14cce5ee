package raster

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/ulamspiral/internal/prime"
	"github.com/udisondev/ulamspiral/internal/spiral"
)

// Ink is the gray level of a prime cell. Other cells stay 0.
const Ink = 0xFF

// sieveChunk is the number of primes placed between cancellation checks.
const sieveChunk = 1 << 14

// Mode selects how a window is filled.
type Mode uint8

const (
	// Sweep tests every cell of the window for primality.
	Sweep Mode = iota
	// Sieve enumerates primes and places each one on the spiral.
	Sieve
)

func (m Mode) String() string {
	switch m {
	case Sweep:
		return "sweep"
	case Sieve:
		return "sieve"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "sweep" or "sieve".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "sweep":
		return Sweep, nil
	case "sieve":
		return Sieve, nil
	default:
		return Sweep, fmt.Errorf("unknown render mode %q", s)
	}
}

// Inverse selects the value to coordinate mapping used by the sieve mode.
type Inverse uint8

const (
	// Exact uses the ring decomposition (spiral.CoordOf).
	Exact Inverse = iota
	// Approximate uses the anchor-corrected lookup (spiral.ApproxCoordOf).
	Approximate
)

func (i Inverse) String() string {
	switch i {
	case Exact:
		return "exact"
	case Approximate:
		return "approx"
	default:
		return fmt.Sprintf("Inverse(%d)", uint8(i))
	}
}

// ParseInverse parses "exact" or "approx".
func ParseInverse(s string) (Inverse, error) {
	switch strings.ToLower(s) {
	case "exact":
		return Exact, nil
	case "approx", "approximate":
		return Approximate, nil
	default:
		return Exact, fmt.Errorf("unknown inverse %q", s)
	}
}

func (i Inverse) locate(v uint32) spiral.Coord {
	if i == Approximate {
		return spiral.ApproxCoordOf(int64(v))
	}
	return spiral.CoordOf(v)
}

// Spec describes one render.
type Spec struct {
	Window  Window
	Mode    Mode
	Inverse Inverse
}

// Result is a finished render.
type Result struct {
	Image   *image.Gray
	Plotted int
	Elapsed time.Duration
}

// Render fills s.Window according to s.Mode.
func Render(ctx context.Context, s Spec, opts ...Option) (Result, error) {
	start := time.Now()

	var (
		img *image.Gray
		err error
	)
	switch s.Mode {
	case Sweep:
		img, err = Generate(ctx, s.Window, opts...)
	case Sieve:
		img, err = GenerateFromSieve(ctx, s.Window, s.Inverse, opts...)
	default:
		return Result{}, fmt.Errorf("rendering %dx%d: unknown mode %s", s.Window.Width, s.Window.Height, s.Mode)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Image:   img,
		Plotted: CountInk(img),
		Elapsed: time.Since(start),
	}
	slog.Debug("spiral rendered",
		"width", s.Window.Width,
		"height", s.Window.Height,
		"mode", s.Mode,
		"inverse", s.Inverse,
		"plotted", res.Plotted,
		"elapsed", res.Elapsed)
	return res, nil
}

// Generate tests every cell of win and inks the primes.
// Rows are processed concurrently; each goroutine owns whole rows.
func Generate(ctx context.Context, win Window, opts ...Option) (*image.Gray, error) {
	if _, err := NewWindow(win.Width, win.Height); err != nil {
		return image.NewGray(image.Rectangle{}), err
	}
	o := buildOptions(opts)
	img := image.NewGray(win.Bounds())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for py := range win.Height {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			y := int32(win.MaxY() - py)
			row := img.Pix[py*img.Stride : py*img.Stride+win.Width]
			for px := range row {
				v := spiral.ValueOf(spiral.Coord{X: int32(px + win.MinX()), Y: y})
				if o.primes.IsPrime(v) {
					row[px] = Ink
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweeping %dx%d window: %w", win.Width, win.Height, err)
	}
	return img, nil
}

// GenerateFromSieve sieves every prime that can fall inside win, locates it
// with inv and inks it. Primes landing outside the window are skipped.
// The spiral is a bijection, so concurrent workers never share a pixel.
func GenerateFromSieve(ctx context.Context, win Window, inv Inverse, opts ...Option) (*image.Gray, error) {
	if _, err := NewWindow(win.Width, win.Height); err != nil {
		return image.NewGray(image.Rectangle{}), err
	}
	o := buildOptions(opts)
	img := image.NewGray(win.Bounds())
	primes := prime.NewSieve(win.sieveLimit()).Primes()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < len(primes); lo += sieveChunk {
		part := primes[lo:min(lo+sieveChunk, len(primes))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, p := range part {
				if px, py, ok := win.Pixel(inv.locate(p)); ok {
					img.Pix[py*img.Stride+px] = Ink
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("placing primes in %dx%d window: %w", win.Width, win.Height, err)
	}
	return img, nil
}

// CountInk returns the number of inked pixels in img.
func CountInk(img *image.Gray) int {
	n := 0
	b := img.Bounds()
	for py := 0; py < b.Dy(); py++ {
		for _, v := range img.Pix[py*img.Stride : py*img.Stride+b.Dx()] {
			if v == Ink {
				n++
			}
		}
	}
	return n
}
