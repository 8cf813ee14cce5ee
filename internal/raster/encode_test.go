package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func render5x5(t *testing.T) *image.Gray {
	t.Helper()
	img, err := Generate(context.Background(), Window{5, 5})
	require.NoError(t, err)
	return img
}

func TestEncodeDecodes(t *testing.T) {
	img := render5x5(t)
	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}

	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, f))

			got, err := decode(&buf)
			require.NoError(t, err)
			require.Equal(t, img.Bounds(), got.Bounds())
			for py := range 5 {
				for px := range 5 {
					g := color.GrayModel.Convert(got.At(px, py)).(color.Gray)
					assert.Equal(t, img.GrayAt(px, py).Y, g.Y, "pixel (%d,%d)", px, py)
				}
			}
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(io.Discard, render5x5(t), Format(7))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{".PNG", PNG},
		{"bmp", BMP},
		{"tif", TIFF},
		{"tiff", TIFF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, ".tiff", TIFF.Extension())
}

func TestSave(t *testing.T) {
	img := render5x5(t)
	path := filepath.Join(t.TempDir(), "spiral"+BMP.Extension())

	require.NoError(t, Save(path, img, BMP))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())

	err = Save(filepath.Join(t.TempDir(), "missing", "out.png"), img, PNG)
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	a := render5x5(t)
	b := render5x5(t)
	assert.Equal(t, Digest(a), Digest(b))
	assert.Len(t, DigestHex(a), 64)

	b.SetGray(0, 0, color.Gray{Y: Ink})
	assert.NotEqual(t, Digest(a), Digest(b))

	// Same pixels, different shape.
	wide := image.NewGray(image.Rect(0, 0, 4, 1))
	tall := image.NewGray(image.Rect(0, 0, 1, 4))
	assert.NotEqual(t, Digest(wide), Digest(tall))
}
