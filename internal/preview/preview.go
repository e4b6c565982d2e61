// Package preview bakes engine queries into images, one row per task.
package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"runtime"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"

	"continentgen/internal/biome"
	"continentgen/internal/mathx"
	"continentgen/internal/profiling"
	"continentgen/internal/terrain"
)

// Source is the subset of the engine a bake reads from.
type Source interface {
	Height(wx, wy float32) float32
	BiomeOverride(nx, ny float32) (biome.Biome, bool)
	ForestFactor(nx, ny, vanilla float32) float32
}

// Kind selects the baked product.
type Kind int

const (
	Height Kind = iota
	Biome
	Forest
)

var kindNames = []string{"height", "biome", "forest"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts "height", "biome" or "forest".
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown bake kind %q", s)
}

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

var formatNames = []string{"png", "bmp", "tiff"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat accepts "png", "bmp" or "tiff".
func ParseFormat(s string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, s) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

// Options controls a bake.
type Options struct {
	Size    int // output side in pixels
	Workers int // concurrent rows; <= 0 uses GOMAXPROCS
	// ForestBase is the host forest factor fed to ForestFactor.
	ForestBase float32
}

// DefaultOptions bakes 512x512 on every CPU.
func DefaultOptions() Options {
	return Options{Size: 512, ForestBase: 1}
}

// Bake renders kind over the whole world. Image row 0 is the north edge.
// Height and forest bakes are 16-bit gray; biome bakes use the palette.
func Bake(ctx context.Context, src Source, kind Kind, opts Options) (image.Image, error) {
	defer profiling.Track("preview.Bake")()
	if opts.Size <= 0 {
		return nil, fmt.Errorf("bake size must be positive, got %d", opts.Size)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	size := opts.Size
	rect := image.Rect(0, 0, size, size)
	var (
		img image.Image
		set func(x, y int, u, v float32)
	)
	switch kind {
	case Height:
		g := image.NewGray16(rect)
		img = g
		set = func(x, y int, u, v float32) {
			h := src.Height(worldOf(u), worldOf(v))
			g.SetGray16(x, y, color.Gray16{Y: gray16(float64(h))})
		}
	case Biome:
		rgba := image.NewRGBA(rect)
		img = rgba
		set = func(x, y int, u, v float32) {
			b, _ := src.BiomeOverride(u, v)
			rgba.SetRGBA(x, y, biome.ColorOf(b))
		}
	case Forest:
		g := image.NewGray16(rect)
		img = g
		set = func(x, y int, u, v float32) {
			f := float64(src.ForestFactor(u, v, opts.ForestBase))
			n := (f - terrain.ForestFactorMin) / (terrain.ForestFactorMax - terrain.ForestFactorMin)
			g.SetGray16(x, y, color.Gray16{Y: gray16(n)})
		}
	default:
		return nil, fmt.Errorf("unknown bake kind %v", kind)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := range size {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v := 1 - (float32(y)+0.5)/float32(size)
			for x := range size {
				set(x, y, (float32(x)+0.5)/float32(size), v)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("bake %v: %w", kind, err)
	}
	return img, nil
}

func worldOf(n float32) float32 {
	return float32(mathx.ToWorld(float64(n)))
}

func gray16(v float64) uint16 {
	return uint16(mathx.Clamp01(v)*65535 + 0.5)
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown image format %v", f)
	}
	if err != nil {
		return fmt.Errorf("encode %v: %w", f, err)
	}
	return nil
}
