package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/udisondev/ulamspiral/internal/catalog"
	"github.com/udisondev/ulamspiral/internal/db"
)

func init() {
	registerCommand("catalog", "FROM TO  store points FROM..TO in PostgreSQL", runCatalog)
}

func runCatalog(ctx context.Context, e *env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("catalog: want FROM TO, got %d arguments", len(args))
	}
	from, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("catalog: parsing from: %w", err)
	}
	to, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("catalog: parsing to: %w", err)
	}
	if !e.cfg.Database.Enabled {
		return errors.New("catalog: database is disabled in config")
	}

	database, err := openDatabase(ctx, e)
	if err != nil {
		return err
	}
	defer database.Close()

	points := db.NewPointRepository(database.Pool())
	b := catalog.NewBuilder(e.engine, points, e.cfg.Catalog.BatchSize)
	stats, err := b.Build(ctx, uint32(from), uint32(to))
	if err != nil {
		return err
	}

	total, primes, err := points.Count(ctx)
	if err != nil {
		return err
	}
	e.printf("stored %d points (%d prime) in %d batches\n", stats.Points, stats.Primes, stats.Batches)
	e.printf("catalog holds %d points, %d prime\n", total, primes)
	return nil
}
