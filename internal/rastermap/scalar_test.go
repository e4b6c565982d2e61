package rastermap

import (
	"math"
	"math/rand"
	"testing"
)

func sampleScalarMap(t *testing.T) *ScalarMap {
	t.Helper()
	data := encodePNG(t, grayImage([][]uint16{
		{0, 65535, 0, 65535},
		{13107, 26214, 39321, 52428},
		{65535, 65535, 0, 0},
		{0, 13107, 26214, 39321},
	}))
	m, err := DecodeScalarMap(data)
	if err != nil {
		t.Fatalf("DecodeScalarMap: %v", err)
	}
	return m
}

func TestScalarMapTexelCenters(t *testing.T) {
	m := sampleScalarMap(t)
	n := m.Side()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			u := float64(x) / float64(n-1)
			v := float64(y) / float64(n-1)
			got := m.Value(u, v)
			want := m.Texel(x, y)
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("Value(%v,%v) = %v, want texel %v", u, v, got, want)
			}
		}
	}
}

func TestScalarMapRowsAreBottomUp(t *testing.T) {
	m := sampleScalarMap(t)
	// Top image row holds {0,1,0,1}; it is the v=1 edge.
	if got := m.Value(1.0/3.0, 1); math.Abs(got-1) > 1e-6 {
		t.Errorf("Value(1/3, 1) = %v, want 1", got)
	}
	// Bottom image row starts with 0.
	if got := m.Value(0, 0); got != 0 {
		t.Errorf("Value(0, 0) = %v, want 0", got)
	}
}

func TestScalarMapEdgeClamp(t *testing.T) {
	m := sampleScalarMap(t)
	if a, b := m.Value(-0.5, 0.3), m.Value(0, 0.3); a != b {
		t.Errorf("u<0 should clamp to the edge: %v != %v", a, b)
	}
	if a, b := m.Value(1.7, 0.3), m.Value(1, 0.3); a != b {
		t.Errorf("u>1 should clamp to the edge: %v != %v", a, b)
	}
}

func TestScalarMapContinuity(t *testing.T) {
	m := sampleScalarMap(t)
	n := float64(m.Side() - 1)
	rng := rand.New(rand.NewSource(12345))
	const eps = 1e-4
	for i := 0; i < 1000; i++ {
		u := rng.Float64() * (1 - eps)
		v := rng.Float64()
		diff := math.Abs(m.Value(u, v) - m.Value(u+eps, v))
		// Largest neighbouring texel delta is 1, so slope is bounded by (side-1).
		if diff > n*eps*1.0001 {
			t.Errorf("discontinuity at (%v,%v): diff=%v", u, v, diff)
		}
	}
}

func BenchmarkScalarMapValue(b *testing.B) {
	data := encodePNG(b, grayImage([][]uint16{{0, 1}, {2, 3}}))
	m, err := DecodeScalarMap(data)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Value(float64(i%1000)/1000, 0.5)
	}
}
