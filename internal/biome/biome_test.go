package biome

import (
	"image/color"
	"testing"
)

func TestNearestExactPaletteColors(t *testing.T) {
	for _, e := range Palette {
		if got := Nearest(e.Color); got != e.Biome {
			t.Errorf("Nearest(%v) = %v, want %v", e.Color, got, e.Biome)
		}
	}
}

func TestNearestApproximateColor(t *testing.T) {
	// Slightly off-green should still be Meadows.
	if got := Nearest(color.RGBA{10, 240, 12, 255}); got != Meadows {
		t.Errorf("expected Meadows, got %v", got)
	}
	// Near-white is Mountain.
	if got := Nearest(color.RGBA{250, 250, 245, 255}); got != Mountain {
		t.Errorf("expected Mountain, got %v", got)
	}
}

func TestResolverMemoizes(t *testing.T) {
	r := NewResolver()
	c := color.RGBA{1, 2, 250, 255}
	first := r.Resolve(c)
	for i := 0; i < 100; i++ {
		if got := r.Resolve(c); got != first {
			t.Fatalf("Resolve not stable: %v != %v", got, first)
		}
	}
	// Alpha is ignored when memoizing.
	r.Resolve(color.RGBA{1, 2, 250, 10})
	if r.Unique() != 1 {
		t.Errorf("expected 1 unique colour, got %d", r.Unique())
	}
	if first != Ocean {
		t.Errorf("expected Ocean, got %v", first)
	}
}

func TestBiomeString(t *testing.T) {
	if Swamp.String() != "Swamp" {
		t.Errorf("got %q", Swamp.String())
	}
	if None.String() != "None" {
		t.Errorf("got %q", None.String())
	}
}
