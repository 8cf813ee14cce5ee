package raster

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat reports an unsupported image format name.
var ErrUnknownFormat = errors.New("raster: unknown image format")

// Format is an output image encoding.
type Format uint8

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	default:
		return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Save encodes img to the file at path.
func Save(path string, img image.Image, f Format) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Digest returns a BLAKE2b-256 hash of the image dimensions and pixels.
// Equal renders produce equal digests regardless of output format.
func Digest(img *image.Gray) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil) // nil key never fails
	b := img.Bounds()

	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(dims[4:8], uint32(b.Dy()))
	h.Write(dims[:])

	for py := 0; py < b.Dy(); py++ {
		h.Write(img.Pix[py*img.Stride : py*img.Stride+b.Dx()])
	}

	var sum [blake2b.Size256]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// DigestHex returns Digest as a lowercase hex string.
func DigestHex(img *image.Gray) string {
	d := Digest(img)
	return hex.EncodeToString(d[:])
}
