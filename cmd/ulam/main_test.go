package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/udisondev/ulamspiral/internal/spiral"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ULAM_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func TestRunPoint(t *testing.T) {
	out, err := runCLI(t, "point", "-9", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "value:  399\n")
	assert.Contains(t, out, "octant: North\n")
	assert.Contains(t, out, "prime:  false\n")
	assert.Contains(t, out, "ring:   10 (values 361..440)\n")
}

func TestRunCoord(t *testing.T) {
	out, err := runCLI(t, "coord", "3987051")
	require.NoError(t, err)
	assert.Contains(t, out, "value:  3,987,051\n")
	assert.Contains(t, out, "coord:  (41, -998)\n")
	assert.Contains(t, out, "octant: South\n")
}

func TestRunLookup(t *testing.T) {
	out, err := runCLI(t, "lookup", "2022")
	require.NoError(t, err)
	assert.Contains(t, out, "coord:  (20, -22)\n")

	_, err = runCLI(t, "lookup", "-1")
	assert.ErrorIs(t, err, spiral.ErrNegativeValue)
}

func TestRunRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiral.tiff")
	out, err := runCLI(t, "render", "-width", "5", "-height", "5", "-mode", "sieve", "-inverse", "approx", "-format", "tiff", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "9 primes plotted in 5x5 window (sieve, approx)")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := tiff.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
}

func TestRunRenderInvalid(t *testing.T) {
	_, err := runCLI(t, "render", "-width", "0")
	assert.Error(t, err)
	_, err = runCLI(t, "render", "-format", "gif")
	assert.Error(t, err)
}

func TestRunCatalogRequiresDatabase(t *testing.T) {
	_, err := runCLI(t, "catalog", "0", "10")
	assert.ErrorContains(t, err, "database is disabled")
}

func TestRunUsage(t *testing.T) {
	out, err := runCLI(t)
	require.NoError(t, err)
	for _, name := range []string{"point", "coord", "lookup", "render", "catalog"} {
		assert.Contains(t, out, name)
	}

	_, err = runCLI(t, "spin")
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "INFO", parseLogLevel("").String())
	assert.Equal(t, "ERROR", parseLogLevel("error").String())
}
