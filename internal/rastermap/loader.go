// Package rastermap decodes square power-of-two images into lookup grids
// sampled over normalized [0,1] coordinates.
package rastermap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"continentgen/internal/mathx"
	"continentgen/internal/profiling"
)

// MaxSide is the largest accepted texture side length.
const MaxSide = 4096

var (
	ErrIO            = errors.New("raster map unreadable")
	ErrDecode        = errors.New("raster map decode failed")
	ErrNotSquare     = errors.New("raster map is not square")
	ErrNotPowerOfTwo = errors.New("raster map side is not a power of two")
	ErrTooLarge      = errors.New("raster map exceeds maximum side")
)

// IsGeometryError reports whether err is one of the size constraint violations.
func IsGeometryError(err error) bool {
	return errors.Is(err, ErrNotSquare) || errors.Is(err, ErrNotPowerOfTwo) || errors.Is(err, ErrTooLarge)
}

// Load reads the encoded image bytes at path.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return data, nil
}

// raster holds the state shared by every map variant.
type raster struct {
	source []byte
	side   int
}

// Source returns the encoded bytes the map was decoded from.
func (r *raster) Source() []byte { return r.source }

// Side returns the texture side length in pixels.
func (r *raster) Side() int { return r.side }

// checkGeometry validates the header before any pixel data is decoded.
func checkGeometry(data []byte) (int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if cfg.Width != cfg.Height {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, cfg.Width, cfg.Height)
	}
	if !mathx.IsPowerOfTwo(cfg.Width) {
		return 0, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, cfg.Width)
	}
	if cfg.Width > MaxSide {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooLarge, cfg.Width, MaxSide)
	}
	return cfg.Width, nil
}

func decodeImage(data []byte) (image.Image, int, error) {
	defer profiling.Track("rastermap.decode")()
	side, err := checkGeometry(data)
	if err != nil {
		return nil, 0, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, side, nil
}

// decodeRGBA decodes data into an RGBA image whose bounds start at the origin.
func decodeRGBA(data []byte) (*image.RGBA, int, error) {
	img, side, err := decodeImage(data)
	if err != nil {
		return nil, 0, err
	}
	rgba := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return rgba, side, nil
}

// gridRow converts an image row to a grid row. Grids are stored bottom-up so
// that v=0 is the southern edge of the world.
func gridRow(imgY, side int) int {
	return side - 1 - imgY
}

// corners computes the four texel indices around (u,v) and the fractional
// weights along each axis. Indices are clamped to the texture edge.
func corners(side int, u, v float64) (x0, y0, x1, y1 int, tx, ty float64) {
	fx := float64(side-1) * u
	fy := float64(side-1) * v
	fx0 := mathx.FloorToInt(fx)
	fy0 := mathx.FloorToInt(fy)
	tx = fx - float64(fx0)
	ty = fy - float64(fy0)
	x0 = clampIndex(fx0, side)
	y0 = clampIndex(fy0, side)
	x1 = clampIndex(fx0+1, side)
	y1 = clampIndex(fy0+1, side)
	return
}

func clampIndex(i, side int) int {
	if i < 0 {
		return 0
	}
	if i > side-1 {
		return side - 1
	}
	return i
}
