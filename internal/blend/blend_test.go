package blend

import (
	"math"
	"testing"
)

func TestApplySpotValues(t *testing.T) {
	cases := []struct {
		mode Mode
		a, b float64
		want float64
	}{
		{Normal, 0.2, 0.7, 0.7},
		{Multiply, 0.5, 0.5, 0.25},
		{Screen, 0.5, 0.5, 0.75},
		{Overlay, 0.25, 0.5, 0.25},
		{Overlay, 0.75, 0.5, 0.75},
		{Darken, 0.3, 0.6, 0.3},
		{Lighten, 0.3, 0.6, 0.6},
		{LinearDodge, 0.3, 0.6, 0.9},
		{Subtract, 0.6, 0.25, 0.35},
		{Difference, 0.25, 0.75, 0.5},
		{Exclusion, 0.5, 0.5, 0.5},
		{PinLight, 0.9, 0.25, 0.5},
		{PinLight, 0.1, 0.75, 0.5},
		{HardMix, 0.9, 0.9, 1},
		{HardMix, 0.1, 0.1, 0},
	}
	for _, c := range cases {
		got := Apply(c.mode, c.a, c.b)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v(%v, %v) = %v, want %v", c.mode, c.a, c.b, got, c.want)
		}
	}
}

func TestDivisionModesAreUnguarded(t *testing.T) {
	if v := Apply(Divide, 0.5, 0); !math.IsInf(v, 1) {
		t.Errorf("Divide by zero = %v, want +Inf", v)
	}
	if v := Apply(ColorDodge, 0.5, 1); !math.IsInf(v, 1) {
		t.Errorf("ColorDodge with b=1 = %v, want +Inf", v)
	}
	if v := Apply(ColorBurn, 0.5, 0); !math.IsInf(v, -1) {
		t.Errorf("ColorBurn with b=0 = %v, want -Inf", v)
	}
	if v := Apply(Divide, 0, 0); !math.IsNaN(v) {
		t.Errorf("0/0 Divide = %v, want NaN", v)
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var got Mode
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", b, err)
		}
		if got != m {
			t.Errorf("round trip %v -> %v", m, got)
		}
	}
	if _, err := ParseMode("Sparkle"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
