package noise

import (
	"math/rand/v2"

	"continentgen/internal/blend"
	"continentgen/internal/mathx"
)

// CalibrationProbes is the number of random samples used to find a
// generator's output range.
const CalibrationProbes = 10000

// WarpedNoise is a calibrated generator with an optional domain warp and the
// post-processing filter chain from its Settings.
type WarpedNoise struct {
	settings Settings
	gen      *Generator
	warp     *Warper
	min, max float64
}

// NewWarpedNoise builds and calibrates a noise. warp may be nil. Calibration
// probes the whole world square with an RNG seeded from s.Seed, so two
// constructions from equal settings are identical.
func NewWarpedNoise(s Settings, warp *Settings, globalScale float64) *WarpedNoise {
	w := &WarpedNoise{
		settings: s,
		gen:      NewGenerator(s, globalScale),
	}
	if warp != nil {
		w.warp = NewWarper(*warp, globalScale)
	}
	w.calibrate()
	return w
}

func (w *WarpedNoise) calibrate() {
	rng := rand.New(rand.NewPCG(uint64(w.settings.Seed), 0x9E3779B97F4A7C15))
	w.min, w.max = 0, 0
	for i := range CalibrationProbes {
		x := (rng.Float64()*2 - 1) * mathx.WorldExtent
		y := (rng.Float64()*2 - 1) * mathx.WorldExtent
		v := w.raw(x, y)
		if i == 0 || v < w.min {
			w.min = v
		}
		if i == 0 || v > w.max {
			w.max = v
		}
	}
}

// Range returns the calibrated raw output range.
func (w *WarpedNoise) Range() (float64, float64) { return w.min, w.max }

func (w *WarpedNoise) raw(x, y float64) float64 {
	if w.warp != nil {
		x, y = w.warp.Warp(x, y)
	}
	return w.gen.Sample(x, y)
}

// Normalized maps the raw sample into [0,1] using the calibrated range.
func (w *WarpedNoise) Normalized(x, y float64) float64 {
	if w.max <= w.min {
		return 0
	}
	return mathx.Clamp01((w.raw(x, y) - w.min) / (w.max - w.min))
}

// Value returns the filtered output: normalize, invert, smoothstep, range
// remap, hard threshold, opacity.
func (w *WarpedNoise) Value(x, y float64) float64 {
	s := &w.settings
	v := w.Normalized(x, y)
	if s.Invert {
		v = 1 - v
	}
	if s.SmoothThreshold {
		v = mathx.SmoothStep(s.SmoothMin, s.SmoothMax, v)
	}
	v = mathx.Lerp(s.RangeStart, s.RangeEnd, v)
	if s.Threshold {
		if v >= s.ThresholdValue {
			v = 1
		} else {
			v = 0
		}
	}
	return v * s.Opacity
}

// Apply blends this noise into in using the configured blend mode.
func (w *WarpedNoise) Apply(x, y, in float64) float64 {
	return blend.Apply(w.settings.BlendMode, in, w.Value(x, y))
}
