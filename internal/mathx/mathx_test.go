package mathx

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormalizedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		w := rng.Float64()*2*WorldExtent - WorldExtent
		back := ToWorld(ToNormalized(w))
		if math.Abs(back-w) > 1e-9 {
			t.Errorf("round trip drifted: %f -> %f", w, back)
		}
	}
	if ToNormalized(0) != 0.5 {
		t.Errorf("origin should map to 0.5, got %f", ToNormalized(0))
	}
	if ToNormalized(-WorldExtent) != 0 || ToNormalized(WorldExtent) != 1 {
		t.Errorf("extent should map to [0,1]")
	}
}

func TestSmoothStepBounds(t *testing.T) {
	if v := SmoothStep(744, 1000, 0); v != 0 {
		t.Errorf("SmoothStep below range = %f, want 0", v)
	}
	if v := SmoothStep(744, 1000, 2000); v != 1 {
		t.Errorf("SmoothStep above range = %f, want 1", v)
	}
	if v := SmoothStep(0, 1, 0.5); v != 0.5 {
		t.Errorf("SmoothStep midpoint = %f, want 0.5", v)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, 4096, 8192} {
		if !IsPowerOfTwo(n) {
			t.Errorf("%d should be a power of two", n)
		}
	}
	for _, n := range []int{0, -4, 3, 100, 4095} {
		if IsPowerOfTwo(n) {
			t.Errorf("%d should not be a power of two", n)
		}
	}
}
