package preview

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"continentgen/internal/biome"
	"continentgen/internal/terrain"
)

// fakeSource is a smooth, deterministic stand-in for the engine.
type fakeSource struct{}

func (fakeSource) Height(wx, wy float32) float32 {
	return (wx + 10500) / 21000
}

func (fakeSource) BiomeOverride(nx, ny float32) (biome.Biome, bool) {
	if ny < 0.5 {
		return biome.Ocean, true
	}
	return biome.Mountain, true
}

func (fakeSource) ForestFactor(nx, ny, vanilla float32) float32 {
	return terrain.ForestFactorMax
}

func TestBakeHeightGradient(t *testing.T) {
	img, err := Bake(context.Background(), fakeSource{}, Height, Options{Size: 16, Workers: 4})
	if err != nil {
		t.Fatalf("Bake: %v", err)
	}
	g, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("height bake is %T, want *image.Gray16", img)
	}
	if g.Bounds().Dx() != 16 || g.Bounds().Dy() != 16 {
		t.Fatalf("bounds = %v", g.Bounds())
	}
	for x := 1; x < 16; x++ {
		if g.Gray16At(x, 3).Y <= g.Gray16At(x-1, 3).Y {
			t.Fatalf("height should increase eastward at x=%d", x)
		}
	}
}

func TestBakeIsIndependentOfWorkers(t *testing.T) {
	one, err := Bake(context.Background(), fakeSource{}, Height, Options{Size: 32, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	many, err := Bake(context.Background(), fakeSource{}, Height, Options{Size: 32, Workers: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(one.(*image.Gray16).Pix, many.(*image.Gray16).Pix) {
		t.Errorf("parallel bake differs from sequential bake")
	}
}

func TestBakeBiomeOrientation(t *testing.T) {
	img, err := Bake(context.Background(), fakeSource{}, Biome, Options{Size: 8})
	if err != nil {
		t.Fatal(err)
	}
	rgba := img.(*image.RGBA)
	// Row 0 is the north edge.
	if got := rgba.RGBAAt(0, 0); got != biome.ColorOf(biome.Mountain) {
		t.Errorf("north = %v, want mountain", got)
	}
	if got := rgba.RGBAAt(0, 7); got != biome.ColorOf(biome.Ocean) {
		t.Errorf("south = %v, want ocean", got)
	}
}

func TestBakeForestSaturates(t *testing.T) {
	img, err := Bake(context.Background(), fakeSource{}, Forest, Options{Size: 4, ForestBase: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.(*image.Gray16).Gray16At(2, 2); got != (color.Gray16{Y: 0xFFFF}) {
		t.Errorf("max forest factor = %v, want white", got)
	}
}

func TestBakeErrors(t *testing.T) {
	if _, err := Bake(context.Background(), fakeSource{}, Height, Options{Size: 0}); err == nil {
		t.Errorf("zero size accepted")
	}
	if _, err := Bake(context.Background(), fakeSource{}, Kind(9), Options{Size: 4}); err == nil {
		t.Errorf("unknown kind accepted")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Bake(ctx, fakeSource{}, Height, Options{Size: 8}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled bake error = %v", err)
	}
}

func TestEncodeFormats(t *testing.T) {
	img, err := Bake(context.Background(), fakeSource{}, Biome, Options{Size: 8})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{PNG, BMP, TIFF} {
		var buf bytes.Buffer
		if err := Encode(&buf, img, f); err != nil {
			t.Fatalf("Encode %v: %v", f, err)
		}
		decoded, name, err := image.Decode(&buf)
		if err != nil {
			t.Fatalf("decode %v: %v", f, err)
		}
		if name != f.String() {
			t.Errorf("decoded format %q, want %q", name, f)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Errorf("%v bounds = %v", f, decoded.Bounds())
		}
	}
}

func TestParse(t *testing.T) {
	for _, k := range []Kind{Height, Biome, Forest} {
		if got, err := ParseKind(k.String()); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}
	for _, f := range []Format{PNG, BMP, TIFF} {
		if got, err := ParseFormat(f.String()); err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Errorf("gif accepted")
	}
}
