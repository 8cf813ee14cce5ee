package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/udisondev/ulamspiral/internal/db"
	"github.com/udisondev/ulamspiral/internal/raster"
)

func init() {
	registerCommand("render", "[flags] render primes into an image (-h for flags)", runRender)
}

func runRender(ctx context.Context, e *env, args []string) error {
	rc := e.cfg.Render

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.IntVar(&rc.Width, "width", rc.Width, "window width in cells")
	fs.IntVar(&rc.Height, "height", rc.Height, "window height in cells")
	fs.StringVar(&rc.Mode, "mode", rc.Mode, "sweep | sieve")
	fs.StringVar(&rc.Inverse, "inverse", rc.Inverse, "exact | approx (sieve mode)")
	fs.StringVar(&rc.Format, "format", rc.Format, "png | bmp | tiff")
	fs.StringVar(&rc.Output, "o", rc.Output, "output file")
	fs.IntVar(&rc.Workers, "workers", rc.Workers, "render goroutines, 0 = GOMAXPROCS")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("render: %w", err)
	}

	spec, err := rc.Spec()
	if err != nil {
		return err
	}
	format, err := raster.ParseFormat(rc.Format)
	if err != nil {
		return err
	}

	res, err := raster.Render(ctx, spec, raster.WithWorkers(rc.Workers))
	if err != nil {
		return err
	}
	if err := raster.Save(rc.Output, res.Image, format); err != nil {
		return err
	}
	digest := raster.Digest(res.Image)

	e.printf("%d primes plotted in %dx%d window (%s, %s) in %v\n",
		res.Plotted, rc.Width, rc.Height, spec.Mode, spec.Inverse, res.Elapsed)
	e.printf("wrote %s, digest %s\n", rc.Output, hex.EncodeToString(digest[:]))

	if !e.cfg.Database.Enabled {
		return nil
	}

	database, err := openDatabase(ctx, e)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, err := db.NewRenderRepository(database.Pool()).Save(ctx, db.RenderRecord{
		Digest:  digest[:],
		Width:   rc.Width,
		Height:  rc.Height,
		Mode:    spec.Mode.String(),
		Inverse: spec.Inverse.String(),
		Format:  format.String(),
		Plotted: res.Plotted,
		Elapsed: res.Elapsed,
	})
	if err != nil {
		return err
	}
	slog.Info("render recorded", "id", rec.ID, "created_at", rec.CreatedAt)
	return nil
}

// openDatabase connects and applies migrations.
func openDatabase(ctx context.Context, e *env) (*db.DB, error) {
	dsn := e.cfg.Database.DSN()
	applied, err := db.RunMigrations(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if len(applied) > 0 {
		slog.Info("migrations applied", "versions", applied)
	}
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Info("database connected", "host", e.cfg.Database.Host, "dbname", e.cfg.Database.DBName)
	return database, nil
}
