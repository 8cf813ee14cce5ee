// Package catalog computes runs of spiral points and hands them to a store.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/ulamspiral/internal/spiral"
)

// PointStore persists batches of spiral points.
type PointStore interface {
	SaveBatch(ctx context.Context, points []spiral.Point) error
}

// Stats summarizes a finished build.
type Stats struct {
	Points  int
	Primes  int
	Batches int
}

// Builder computes points on one goroutine and stores them on another,
// so the engine keeps working while a batch is in flight.
type Builder struct {
	engine    *spiral.Engine
	store     PointStore
	batchSize int
}

// NewBuilder creates a Builder. batchSize below 1 is treated as 1.
func NewBuilder(engine *spiral.Engine, store PointStore, batchSize int) *Builder {
	return &Builder{
		engine:    engine,
		store:     store,
		batchSize: max(batchSize, 1),
	}
}

// Build computes and stores every point with value in [from, to].
func (b *Builder) Build(ctx context.Context, from, to uint32) (Stats, error) {
	if from > to {
		return Stats{}, fmt.Errorf("building catalog: empty range %d..%d", from, to)
	}

	batches := make(chan []spiral.Point, 2)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		batch := make([]spiral.Point, 0, b.batchSize)
		for v := uint64(from); v <= uint64(to); v++ {
			batch = append(batch, b.engine.PointAt(uint32(v)))
			if len(batch) < b.batchSize && v < uint64(to) {
				continue
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case batches <- batch:
			case <-gctx.Done():
				return gctx.Err()
			}
			batch = make([]spiral.Point, 0, b.batchSize)
		}
		return nil
	})

	var stats Stats
	g.Go(func() error {
		for batch := range batches {
			if err := b.store.SaveBatch(gctx, batch); err != nil {
				return fmt.Errorf("storing values %d..%d: %w", batch[0].Value, batch[len(batch)-1].Value, err)
			}
			stats.Batches++
			stats.Points += len(batch)
			for _, p := range batch {
				if p.Prime {
					stats.Primes++
				}
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return stats, fmt.Errorf("building catalog %d..%d: %w", from, to, err)
	}

	slog.Info("catalog built",
		"from", from,
		"to", to,
		"points", stats.Points,
		"primes", stats.Primes,
		"batches", stats.Batches)
	return stats, nil
}
