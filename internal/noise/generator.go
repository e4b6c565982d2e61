package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"continentgen/internal/mathx"
)

// source is a single-octave noise function returning roughly [-1,1].
type source func(x, y float64) float64

func newSource(s Settings, seed int64) source {
	switch s.NoiseType {
	case OpenSimplex2:
		n := opensimplex.New(seed)
		return n.Eval2
	case OpenSimplex2S:
		// Sampled as a slice through 3D noise, which is smoother than the 2D lattice.
		n := opensimplex.New(seed)
		return func(x, y float64) float64 { return n.Eval3(x, y, 0.5) }
	case Perlin:
		p := perlin.NewPerlin(2, 2, 1, seed)
		return p.Noise2D
	case ValueCubic:
		return func(x, y float64) float64 { return valueCubicNoise(x, y, seed) }
	case Value:
		return func(x, y float64) float64 { return valueNoise(x, y, seed) }
	case Cellular:
		dist, ret, jitter := s.CellularDistance, s.CellularReturn, s.CellularJitter
		return func(x, y float64) float64 { return cellularNoise(x, y, seed, dist, ret, jitter) }
	}
	n := opensimplex.New(seed)
	return n.Eval2
}

// Generator evaluates one noise family with its fractal octaves. The
// frequency is fixed at construction from Settings.Frequency * globalScale.
type Generator struct {
	settings Settings
	freq     float64
	octaves  []source
	bounding float64
}

// NewGenerator builds a generator. A non-positive globalScale is treated as 1.
func NewGenerator(s Settings, globalScale float64) *Generator {
	if globalScale <= 0 {
		globalScale = 1
	}
	n := 1
	if s.FractalType != FractalNone && s.Octaves > 1 {
		n = s.Octaves
	}
	g := &Generator{
		settings: s,
		freq:     s.Frequency * globalScale,
		octaves:  make([]source, n),
	}
	for i := range n {
		g.octaves[i] = newSource(s, s.Seed+int64(i))
	}

	gain := math.Abs(s.Gain)
	amp := gain
	total := 1.0
	for i := 1; i < n; i++ {
		total += amp
		amp *= gain
	}
	g.bounding = 1 / total
	return g
}

// Frequency returns the effective sampling frequency.
func (g *Generator) Frequency() float64 { return g.freq }

// Sample evaluates the raw, unnormalized noise at world (x,y).
func (g *Generator) Sample(x, y float64) float64 {
	x *= g.freq
	y *= g.freq
	s := &g.settings

	switch s.FractalType {
	case FractalFBm:
		sum, amp := 0.0, g.bounding
		for _, src := range g.octaves {
			n := src(x, y)
			sum += n * amp
			amp *= mathx.Lerp(1, math.Min(n+1, 2)*0.5, s.WeightedStrength)
			x *= s.Lacunarity
			y *= s.Lacunarity
			amp *= s.Gain
		}
		return sum
	case FractalRidged:
		sum, amp := 0.0, g.bounding
		for _, src := range g.octaves {
			n := math.Abs(src(x, y))
			sum += (n*-2 + 1) * amp
			amp *= mathx.Lerp(1, 1-n, s.WeightedStrength)
			x *= s.Lacunarity
			y *= s.Lacunarity
			amp *= s.Gain
		}
		return sum
	case FractalPingPong:
		sum, amp := 0.0, g.bounding
		for _, src := range g.octaves {
			n := pingPong((src(x, y) + 1) * s.PingPongStrength)
			sum += (n - 0.5) * 2 * amp
			amp *= mathx.Lerp(1, n, s.WeightedStrength)
			x *= s.Lacunarity
			y *= s.Lacunarity
			amp *= s.Gain
		}
		return sum
	}
	return g.octaves[0](x, y)
}

func pingPong(t float64) float64 {
	t -= math.Trunc(t*0.5) * 2
	if t < 1 {
		return t
	}
	return 2 - t
}
