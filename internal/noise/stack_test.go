package noise

import (
	"math"
	"testing"

	"continentgen/internal/blend"
)

func TestStackDeterministic(t *testing.T) {
	s := StackSettings{Base: Layer{Noise: DefaultSettings()}}

	st := NewStack(s, 1)
	var results [100]float64
	for i := range results {
		results[i] = st.Evaluate(1234.5, -678.25, 0)
	}
	first := results[0]
	if first < 0 || first > 1 {
		t.Fatalf("Evaluate = %v, expected in [0,1]", first)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("Evaluate not deterministic: results[0]=%v, results[%d]=%v", first, i, results[i])
		}
	}

	// A fresh construction from the same settings must calibrate identically.
	again := NewStack(s, 1)
	if got := again.Evaluate(1234.5, -678.25, 0); got != first {
		t.Errorf("rebuilt stack = %v, want %v", got, first)
	}
}

func TestCalibratedRangeNormalizes(t *testing.T) {
	w := NewWarpedNoise(DefaultSettings(), nil, 1)
	lo, hi := w.Range()
	if !(lo < hi) {
		t.Fatalf("calibrated range [%v,%v] is empty", lo, hi)
	}
	for i := 0; i < 500; i++ {
		x := float64(i*37%21000) - 10500
		y := float64(i*91%21000) - 10500
		if v := w.Normalized(x, y); v < 0 || v > 1 {
			t.Fatalf("Normalized(%v,%v) = %v", x, y, v)
		}
	}
}

func TestEveryTypeNormalizesIntoUnitRange(t *testing.T) {
	for _, nt := range []Type{OpenSimplex2, OpenSimplex2S, Cellular, Perlin, ValueCubic, Value} {
		s := DefaultSettings()
		s.NoiseType = nt
		s.Frequency = 0.002
		w := NewWarpedNoise(s, nil, 1)
		for i := 0; i < 200; i++ {
			v := w.Value(float64(i)*101-10000, float64(i)*-77+5000)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%v: Value = %v", nt, v)
			}
		}
	}
}

func TestFilters(t *testing.T) {
	base := DefaultSettings()
	plain := NewWarpedNoise(base, nil, 1)

	inv := base
	inv.Invert = true
	inverted := NewWarpedNoise(inv, nil, 1)

	thr := base
	thr.Threshold = true
	thr.ThresholdValue = 0.5
	thresholded := NewWarpedNoise(thr, nil, 1)

	op := base
	op.Opacity = 0.25
	faded := NewWarpedNoise(op, nil, 1)

	rng := base
	rng.RangeStart, rng.RangeEnd = 0.2, 0.4
	ranged := NewWarpedNoise(rng, nil, 1)

	for i := 0; i < 100; i++ {
		x, y := float64(i)*211-10000, float64(i)*-97+3000
		v := plain.Value(x, y)
		if got := inverted.Value(x, y); math.Abs(got-(1-v)) > 1e-12 {
			t.Errorf("invert: got %v, want %v", got, 1-v)
		}
		if got := thresholded.Value(x, y); got != 0 && got != 1 {
			t.Errorf("threshold produced %v", got)
		}
		if got := faded.Value(x, y); math.Abs(got-v*0.25) > 1e-12 {
			t.Errorf("opacity: got %v, want %v", got, v*0.25)
		}
		if got := ranged.Value(x, y); got < 0.2-1e-12 || got > 0.4+1e-12 {
			t.Errorf("range remap: got %v", got)
		}
	}
}

func TestZeroOpacityMaskLeavesInputUnchanged(t *testing.T) {
	mask := DefaultSettings()
	mask.Opacity = 0

	over := DefaultSettings()
	over.Seed = 7
	s := StackSettings{
		Base:   Layer{Noise: DefaultSettings()},
		Layers: []Layer{{Noise: over, Mask: &mask}},
	}
	withMask := NewStack(s, 1)
	baseOnly := NewStack(StackSettings{Base: s.Base}, 1)

	for i := 0; i < 50; i++ {
		x, y := float64(i)*333-8000, float64(i)*123-4000
		if a, b := withMask.Evaluate(x, y, 0), baseOnly.Evaluate(x, y, 0); a != b {
			t.Fatalf("masked layer changed output: %v != %v", a, b)
		}
	}
	if withMask.Layers() != 1 {
		t.Errorf("Layers() = %d, want 1", withMask.Layers())
	}
}

func TestLayersApplyInOrder(t *testing.T) {
	add := DefaultSettings()
	add.Seed = 11
	add.BlendMode = blend.LinearDodge

	mul := DefaultSettings()
	mul.Seed = 12
	mul.BlendMode = blend.Multiply

	base := Layer{Noise: DefaultSettings()}
	ab := NewStack(StackSettings{Base: base, Layers: []Layer{{Noise: add}, {Noise: mul}}}, 1)
	ba := NewStack(StackSettings{Base: base, Layers: []Layer{{Noise: mul}, {Noise: add}}}, 1)

	b := NewWarpedNoise(base.Noise, nil, 1)
	a := NewWarpedNoise(add, nil, 1)
	m := NewWarpedNoise(mul, nil, 1)

	x, y := 2500.0, -1750.0
	want := (b.Value(x, y) + a.Value(x, y)) * m.Value(x, y)
	if got := ab.Evaluate(x, y, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("add then multiply: got %v, want %v", got, want)
	}
	want = b.Value(x, y)*m.Value(x, y) + a.Value(x, y)
	if got := ba.Evaluate(x, y, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("multiply then add: got %v, want %v", got, want)
	}
}

func TestWarpIsDeterministic(t *testing.T) {
	s := DefaultSettings()
	warp := DefaultSettings()
	warp.Seed = 99
	warp.Frequency = 0.001

	a := NewWarpedNoise(s, &warp, 1)
	b := NewWarpedNoise(s, &warp, 1)
	plain := NewWarpedNoise(s, nil, 1)

	differs := false
	for i := 0; i < 50; i++ {
		x, y := float64(i)*401-9000, float64(i)*-203+7000
		if a.Value(x, y) != b.Value(x, y) {
			t.Fatalf("warped noise not reproducible at (%v,%v)", x, y)
		}
		if a.Value(x, y) != plain.Value(x, y) {
			differs = true
		}
	}
	if !differs {
		t.Errorf("warp had no effect")
	}
}

func BenchmarkStackEvaluate(b *testing.B) {
	st := NewStack(StackSettings{Base: Layer{Noise: DefaultSettings()}}, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = st.Evaluate(float64(i%21000)-10500, 42, 0)
	}
}
