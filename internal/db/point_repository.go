package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/ulamspiral/internal/raster"
	"github.com/udisondev/ulamspiral/internal/spiral"
)

// PointRepository stores computed spiral points.
type PointRepository struct {
	pool *pgxpool.Pool
}

// NewPointRepository creates a new point repository.
func NewPointRepository(pool *pgxpool.Pool) *PointRepository {
	return &PointRepository{pool: pool}
}

const pointColumns = `value, x, y, octant, is_prime`

// SaveBatch replaces the stored rows for the given points within one transaction.
func (r *PointRepository) SaveBatch(ctx context.Context, points []spiral.Point) error {
	if len(points) == 0 {
		return nil
	}

	values := make([]int64, 0, len(points))
	rows := make([][]any, 0, len(points))
	for _, p := range points {
		values = append(values, int64(p.Value))
		rows = append(rows, []any{
			int64(p.Value), p.Coord.X, p.Coord.Y, int32(p.Coord.Ring()), p.Octant.String(), p.Prime,
		})
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning point batch: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM spiral_points WHERE value = ANY($1)`, values); err != nil {
		return fmt.Errorf("deleting old points: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"spiral_points"},
		[]string{"value", "x", "y", "ring", "octant", "is_prime"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copying %d points: %w", len(points), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing point batch: %w", err)
	}

	slog.Debug("saved spiral points",
		"count", len(points),
		"first", points[0].Value,
		"last", points[len(points)-1].Value)
	return nil
}

// Get loads the point holding value v.
// Returns ErrNotFound if it has not been stored.
func (r *PointRepository) Get(ctx context.Context, v uint32) (spiral.Point, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+pointColumns+` FROM spiral_points WHERE value = $1`, int64(v))
	p, err := scanPoint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return spiral.Point{}, fmt.Errorf("point %d: %w", v, ErrNotFound)
	}
	if err != nil {
		return spiral.Point{}, fmt.Errorf("querying point %d: %w", v, err)
	}
	return p, nil
}

// AtCoord loads the point stored at c.
// Returns ErrNotFound if it has not been stored.
func (r *PointRepository) AtCoord(ctx context.Context, c spiral.Coord) (spiral.Point, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+pointColumns+` FROM spiral_points WHERE x = $1 AND y = $2`, c.X, c.Y)
	p, err := scanPoint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return spiral.Point{}, fmt.Errorf("point at %s: %w", c, ErrNotFound)
	}
	if err != nil {
		return spiral.Point{}, fmt.Errorf("querying point at %s: %w", c, err)
	}
	return p, nil
}

// InWindow loads the stored points inside win, top row first.
func (r *PointRepository) InWindow(ctx context.Context, win raster.Window) ([]spiral.Point, error) {
	query := `
		SELECT ` + pointColumns + `
		FROM spiral_points
		WHERE x BETWEEN $1 AND $2 AND y BETWEEN $3 AND $4
		ORDER BY y DESC, x
	`

	rows, err := r.pool.Query(ctx, query, win.MinX(), win.MaxX(), win.MinY(), win.MaxY())
	if err != nil {
		return nil, fmt.Errorf("querying points in %dx%d window: %w", win.Width, win.Height, err)
	}
	defer rows.Close()

	points := make([]spiral.Point, 0, win.Width*win.Height)
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning point row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating point rows: %w", err)
	}
	return points, nil
}

// Count returns the number of stored points and how many of them are prime.
func (r *PointRepository) Count(ctx context.Context) (total, primes int64, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE is_prime) FROM spiral_points`,
	).Scan(&total, &primes)
	if err != nil {
		return 0, 0, fmt.Errorf("counting points: %w", err)
	}
	return total, primes, nil
}

func scanPoint(row pgx.Row) (spiral.Point, error) {
	var (
		value  int64
		x, y   int32
		octant string
		prime  bool
	)
	if err := row.Scan(&value, &x, &y, &octant, &prime); err != nil {
		return spiral.Point{}, err
	}
	o, err := spiral.ParseOctant(octant)
	if err != nil {
		return spiral.Point{}, fmt.Errorf("point %d: %w", value, err)
	}
	return spiral.Point{
		Value:  uint32(value),
		Coord:  spiral.NewCoord(x, y),
		Octant: o,
		Prime:  prime,
	}, nil
}
