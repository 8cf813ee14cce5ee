package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/udisondev/ulamspiral/internal/spiral"
)

func init() {
	registerCommand("point", "X Y      value, octant and primality at a coordinate", runPoint)
	registerCommand("coord", "V        coordinate of a value (ring decomposition)", runCoord)
	registerCommand("lookup", "V        coordinate of a value (anchor-corrected)", runLookup)
}

func runPoint(_ context.Context, e *env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("point: want X Y, got %d arguments", len(args))
	}
	x, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("point: parsing x: %w", err)
	}
	y, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("point: parsing y: %w", err)
	}

	p, err := e.engine.Point(spiral.NewCoord(int32(x), int32(y)))
	if err != nil {
		return err
	}
	printPoint(e, p)
	return nil
}

func runCoord(_ context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("coord: want V, got %d arguments", len(args))
	}
	v, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("coord: parsing value: %w", err)
	}
	printPoint(e, e.engine.PointAt(uint32(v)))
	return nil
}

func runLookup(_ context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("lookup: want V, got %d arguments", len(args))
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("lookup: parsing value: %w", err)
	}
	c, err := e.engine.Lookup(v)
	if err != nil {
		return err
	}
	p, err := e.engine.Point(c)
	if err != nil {
		return err
	}
	printPoint(e, p)
	return nil
}

func printPoint(e *env, p spiral.Point) {
	ring := p.Coord.Ring()
	first, last, _ := spiral.RingBounds(ring)
	e.printf("value:  %d\n", p.Value)
	e.printf("coord:  %s\n", p.Coord)
	e.printf("octant: %s\n", p.Octant)
	e.printf("prime:  %t\n", p.Prime)
	e.printf("ring:   %d (values %d..%d)\n", ring, first, last)
}
