package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Warper perturbs sampling coordinates. With a fractal type set, octaves are
// applied progressively: each octave warps the already-warped coordinates.
type Warper struct {
	freq    float64
	amp     float64
	lac     float64
	gain    float64
	offsets []func(x, y float64) (float64, float64)
}

// NewWarper builds a warper from s. Frequency is scaled by globalScale like
// any generator; WarpAmplitude is in world units.
func NewWarper(s Settings, globalScale float64) *Warper {
	if globalScale <= 0 {
		globalScale = 1
	}
	n := 1
	if s.FractalType != FractalNone && s.Octaves > 1 {
		n = s.Octaves
	}
	w := &Warper{
		freq:    s.Frequency * globalScale,
		amp:     s.WarpAmplitude,
		lac:     s.Lacunarity,
		gain:    s.Gain,
		offsets: make([]func(x, y float64) (float64, float64), n),
	}
	for i := range n {
		seed := s.Seed + int64(i)*2
		switch s.WarpType {
		case WarpBasicGrid:
			w.offsets[i] = func(x, y float64) (float64, float64) {
				return valueNoise(x, y, seed), valueNoise(x, y, seed+1)
			}
		case WarpOpenSimplex2Reduced:
			src := opensimplex.New(seed)
			w.offsets[i] = func(x, y float64) (float64, float64) {
				return src.Eval2(x, y), src.Eval2(x+31.416, y-27.183)
			}
		default:
			nx := opensimplex.New(seed)
			ny := opensimplex.New(seed + 1)
			w.offsets[i] = func(x, y float64) (float64, float64) {
				return nx.Eval2(x, y), ny.Eval2(x, y)
			}
		}
	}
	return w
}

// Warp returns the displaced coordinates for (x,y).
func (w *Warper) Warp(x, y float64) (float64, float64) {
	freq, amp := w.freq, w.amp
	for _, off := range w.offsets {
		ox, oy := off(x*freq, y*freq)
		x += ox * amp
		y += oy * amp
		freq *= w.lac
		amp *= w.gain
	}
	return x, y
}
