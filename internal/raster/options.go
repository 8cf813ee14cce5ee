package raster

import (
	"runtime"

	"github.com/udisondev/ulamspiral/internal/prime"
	"github.com/udisondev/ulamspiral/internal/spiral"
)

// Option configures a render.
type Option func(*options)

type options struct {
	workers int
	primes  spiral.PrimeTester
}

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		primes:  prime.Tester{},
	}
}

// WithWorkers sets the number of goroutines used for a render.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithPrimeTester replaces the primality test used by the sweep mode.
// The sieve mode always uses its own sieve.
func WithPrimeTester(t spiral.PrimeTester) Option {
	return func(o *options) {
		if t != nil {
			o.primes = t
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
