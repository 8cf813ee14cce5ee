package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RenderRecord describes one generated image, keyed by its pixel digest.
type RenderRecord struct {
	ID        int64
	Digest    []byte
	Width     int
	Height    int
	Mode      string
	Inverse   string
	Format    string
	Plotted   int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// RenderRepository stores render records.
type RenderRepository struct {
	pool *pgxpool.Pool
}

// NewRenderRepository creates a new render repository.
func NewRenderRepository(pool *pgxpool.Pool) *RenderRepository {
	return &RenderRepository{pool: pool}
}

// Save stores rec and returns it with ID and CreatedAt set.
// A record with the same digest is kept as is and returned instead.
func (r *RenderRepository) Save(ctx context.Context, rec RenderRecord) (RenderRecord, error) {
	query := `
		INSERT INTO renders (digest, width, height, mode, inverse, format, plotted, elapsed_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (digest) DO UPDATE SET digest = EXCLUDED.digest
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		rec.Digest, rec.Width, rec.Height, rec.Mode, rec.Inverse, rec.Format,
		rec.Plotted, rec.Elapsed.Milliseconds(),
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return rec, fmt.Errorf("saving render %dx%d: %w", rec.Width, rec.Height, err)
	}
	return rec, nil
}

// ByDigest loads the render with the given digest.
// Returns ErrNotFound if none exists.
func (r *RenderRepository) ByDigest(ctx context.Context, digest []byte) (RenderRecord, error) {
	query := `
		SELECT id, digest, width, height, mode, inverse, format, plotted, elapsed_ms, created_at
		FROM renders
		WHERE digest = $1
	`

	var (
		rec       RenderRecord
		elapsedMS int64
	)
	err := r.pool.QueryRow(ctx, query, digest).Scan(
		&rec.ID, &rec.Digest, &rec.Width, &rec.Height, &rec.Mode, &rec.Inverse, &rec.Format,
		&rec.Plotted, &elapsedMS, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return RenderRecord{}, fmt.Errorf("render %x: %w", digest, ErrNotFound)
	}
	if err != nil {
		return RenderRecord{}, fmt.Errorf("querying render %x: %w", digest, err)
	}
	rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return rec, nil
}
