package rastermap

import (
	"image"
	"image/color"
	"testing"

	"continentgen/internal/biome"
)

// splitBiomeMap returns an 8x8 map, Meadows on the left half and Ocean on the right.
func splitBiomeMap(t *testing.T) *BiomeMap {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill(img, image.Rect(0, 0, 4, 8), biome.ColorOf(biome.Meadows))
	// Off-palette blue, resolved to Ocean by nearest colour.
	fill(img, image.Rect(4, 0, 8, 8), color.RGBA{10, 20, 230, 255})
	m, err := DecodeBiomeMap(encodePNG(t, img))
	if err != nil {
		t.Fatalf("DecodeBiomeMap: %v", err)
	}
	return m
}

func TestBiomeMapUniformRegions(t *testing.T) {
	m := splitBiomeMap(t)
	for _, v := range []float64{0, 0.25, 0.5, 0.9, 1} {
		if got := m.Value(0.1, v); got != biome.Meadows {
			t.Errorf("Value(0.1,%v) = %v, want Meadows", v, got)
		}
		if got := m.Value(0.9, v); got != biome.Ocean {
			t.Errorf("Value(0.9,%v) = %v, want Ocean", v, got)
		}
	}
}

func TestBiomeMapStraddleIsDeterministic(t *testing.T) {
	m := splitBiomeMap(t)
	// u=0.5 sits exactly between column 3 (Meadows) and column 4 (Ocean).
	first := m.Value(0.5, 0.5)
	if first != biome.Meadows && first != biome.Ocean {
		t.Fatalf("straddle produced %v, expected one of the two neighbours", first)
	}
	var results [100]biome.Biome
	for i := range results {
		results[i] = m.Value(0.5, 0.5)
	}
	for i, r := range results {
		if r != first {
			t.Errorf("results[%d]=%v differs from first=%v", i, r, first)
		}
	}
	// Equal weights resolve to the first corner seen, which is the left texel.
	if first != biome.Meadows {
		t.Errorf("tie should favour the first corner (Meadows), got %v", first)
	}
}

func TestBiomeMapMajorityOfArea(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// Bottom row (image y=1) Swamp, top-left Swamp, top-right Plains.
	fill(img, image.Rect(0, 0, 2, 2), biome.ColorOf(biome.Swamp))
	img.SetRGBA(1, 0, biome.ColorOf(biome.Plains))
	m, err := DecodeBiomeMap(encodePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	// Near the Plains corner Plains owns most of the weight.
	if got := m.Value(0.95, 0.95); got != biome.Plains {
		t.Errorf("Value near Plains corner = %v", got)
	}
	// At the centre three corners out-vote one.
	if got := m.Value(0.5, 0.5); got != biome.Swamp {
		t.Errorf("Value at centre = %v, want Swamp", got)
	}
}
