// Package terrain composes noise and raster maps into base terrain height,
// the roughmap pass and the forest factor.
package terrain

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"continentgen/internal/mathx"
	"continentgen/internal/noise"
)

// Compositor computes base terrain height. It is immutable after
// construction and safe for concurrent use; raster maps are read through
// Maps on every query so a reload takes effect immediately.
type Compositor struct {
	algo                Algorithm
	p                   Params
	maps                *Maps
	stack               *noise.Stack
	minMountainDistance float64
	perlin              *perlin.Perlin
	offsets             [2]float64
}

// NewCompositor builds a compositor. stack may be nil, in which case the
// two-sample Perlin product provides the large-scale shape.
func NewCompositor(algo Algorithm, p Params, maps *Maps, stack *noise.Stack, minMountainDistance float64) *Compositor {
	if p.GlobalScale <= 0 {
		p.GlobalScale = 1
	}
	if maps == nil {
		maps = &Maps{}
	}
	rng := rand.New(rand.NewPCG(uint64(p.Seed), 0x5851F42D4C957F2D))
	return &Compositor{
		algo:                algo,
		p:                   p,
		maps:                maps,
		stack:               stack,
		minMountainDistance: minMountainDistance,
		perlin:              perlin.NewPerlin(2, 2, 1, p.Seed),
		offsets:             [2]float64{rng.Float64()*20000 - 10000, rng.Float64()*20000 - 10000},
	}
}

// Algorithm returns the active height pipeline.
func (c *Compositor) Algorithm() Algorithm { return c.algo }

// Params returns a copy of the compositor inputs.
func (c *Compositor) Params() Params { return c.p }

// Maps returns the raster map set the compositor reads from.
func (c *Compositor) Maps() *Maps { return c.maps }

// perlin01 is a single Perlin octave mapped to [0,1].
func (c *Compositor) perlin01(x, y float64) float64 {
	return mathx.Clamp01(0.5 + c.perlin.Noise2D(x, y)*math.Sqrt(0.5))
}

// Height returns the base height at world (wx, wy).
func (c *Compositor) Height(wx, wy float64) float64 {
	switch c.algo {
	case V1:
		return c.heightV1(wx, wy)
	default:
		return c.heightV2(wx, wy)
	}
}

// features are the per-coordinate terms shared by both pipelines.
type features struct {
	u, v  float64 // normalized map coordinates
	dist  float64 // unscaled distance from the world center
	x, y  float64 // scaled and offset noise coordinates
	big   float64
	ridge float64
	blend float64
}

func (c *Compositor) sample(wx, wy float64) features {
	p := &c.p
	f := features{
		u:    mathx.ToNormalized(wx),
		v:    mathx.ToNormalized(wy),
		dist: mathx.Length(wx, wy),
	}

	x, y := wx*p.GlobalScale, wy*p.GlobalScale
	warpScale := 0.001 * p.RidgeScale
	warpX := (c.perlin01(x*warpScale, y*warpScale) - 0.5) * mathx.WorldExtent
	warpY := (c.perlin01((x+2000)*warpScale, (y+3000)*warpScale) - 0.5) * mathx.WorldExtent

	x += 100000 + c.offsets[0]
	y += 100000 + c.offsets[1]
	f.x, f.y = x, y

	if c.stack != nil {
		// Stack frequencies already include the global scale.
		f.big = c.stack.Evaluate(wx, wy, 0)
	} else {
		f.big = c.perlin01(x*0.001, y*0.001) * c.perlin01(x*0.0015, y*0.0015)
	}
	f.big = c.applyHeightmap(f.u, f.v, f.big)

	f.ridge = c.ridge(x+warpX, y+warpY) * p.MaxRidgeHeight
	f.blend = c.ridgeBlend(x, y)
	return f
}

func (c *Compositor) heightV2(wx, wy float64) float64 {
	p := &c.p
	f := c.sample(wx, wy)

	detailed := c.addDetail(f.x, f.y, c.shape(mathx.Clamp01(f.big+f.ridge*f.blend)))
	h := c.applyFlatmap(f.u, f.v, f.big, detailed)
	h = h - heightBias + p.SeaLevelAdjustment

	if p.OceanChannels {
		h = c.oceanChannels(f.x, f.y, f.dist, h)
	}
	if !p.DisableMapEdgeDropoff {
		h = edgeDropoff(h, f.dist)
	}
	if !p.MountainsAllowedAtCenter {
		h = suppressCenterMountains(h, f.dist, c.minMountainDistance)
	}
	return h
}

func (c *Compositor) heightV1(wx, wy float64) float64 {
	p := &c.p
	f := c.sample(wx, wy)

	h := c.addDetail(f.x, f.y, c.shape(mathx.Lerp(f.big, f.ridge, f.blend)))
	h = h - heightBias + p.SeaLevelAdjustment

	if p.OceanChannels {
		h = c.oceanChannels(f.x, f.y, f.dist, h)
	}
	h = edgeDropoff(h, f.dist)
	return suppressCenterMountains(h, f.dist, c.minMountainDistance)
}

// ridge is a ridged Perlin product in [0,1].
func (c *Compositor) ridge(x, y float64) float64 {
	a := 1 - math.Abs(c.perlin01(x*0.001, y*0.001)-0.5)*2
	b := 1 - math.Abs(c.perlin01(x*0.002+7.1, y*0.002+3.3)-0.5)*2
	return a * a * b
}

func (c *Compositor) ridgeBlend(x, y float64) float64 {
	s := c.perlin01(x*0.0005+11.5, y*0.0005-4.25)
	return mathx.Clamp01(1 / (1 + math.Exp(-(s+c.p.RidgeBlendSigmoidXOffset)*c.p.RidgeBlendSigmoidB)))
}

// shapeMountains is f(x,n) = x(1-(1-x)^(1.2+0.8n)) + x(1-x).
func shapeMountains(x, n float64) float64 {
	return x*(1-math.Pow(1-x, 1.2+0.8*n)) + x*(1-x)
}

// shape applies the mountain curve to the part of h above sea level.
func (c *Compositor) shape(h float64) float64 {
	if h <= seaLevel {
		return h
	}
	t := (h - seaLevel) / (1 - seaLevel)
	return seaLevel + shapeMountains(t, c.p.MountainsAmount)*(1-seaLevel)
}

// addDetail adds two fine noise terms proportional to the running height.
func (c *Compositor) addDetail(x, y, h float64) float64 {
	h += c.perlin01(x*0.002, y*0.002) * c.perlin01(x*0.003, y*0.003) * h * 0.9
	h += c.perlin01(x*0.005, y*0.005) * c.perlin01(x*0.01, y*0.01) * h * 0.5
	return h
}

func (c *Compositor) applyHeightmap(u, v, h float64) float64 {
	p := &c.p
	m := c.maps.Scalar(Heightmap)
	if m == nil || (p.HeightmapBlend == 0 && p.HeightmapAdd == 0 && p.HeightmapMask == 0) {
		return h
	}
	r := m.Value(u, v)
	res := mathx.Lerp(h, r*p.HeightmapAmount, p.HeightmapBlend)
	res = mathx.Lerp(res, h*r*p.HeightmapAmount, p.HeightmapMask)
	return res + r*p.HeightmapAdd
}

func (c *Compositor) applyFlatmap(u, v, big, detailed float64) float64 {
	if c.p.FlatmapBlend == 0 {
		return detailed
	}
	var flat float64
	if c.p.UseRoughInvertedAsFlat {
		m := c.maps.Scalar(Roughmap)
		if m == nil {
			return detailed
		}
		flat = 1 - m.Value(u, v)
	} else {
		m := c.maps.Scalar(Flatmap)
		if m == nil {
			return detailed
		}
		flat = m.Value(u, v)
	}
	return mathx.Lerp(detailed, big, flat*c.p.FlatmapBlend)
}

func (c *Compositor) oceanChannels(x, y, dist, h float64) float64 {
	const s = 0.002 * 0.25
	mask := math.Abs(c.perlin01(x*s+0.123, y*s+0.15123) - c.perlin01(x*s+0.321, y*s+0.231))
	k := (1 - mathx.LerpStep(channelMaskLow, channelMaskHigh, mask)) * mathx.SmoothStep(channelNear, channelFar, dist)
	return h * (1 - k)
}

// edgeDropoff ramps toward edgeHeight past the world radius, then toward
// edgeCliff over the last few units.
func edgeDropoff(h, dist float64) float64 {
	if dist <= edgeStart {
		return h
	}
	h = mathx.Lerp(h, edgeHeight, mathx.LerpStep(edgeStart, edgeEnd, dist))
	if dist > edgeCliffStart {
		h = mathx.Lerp(h, edgeCliff, mathx.LerpStep(edgeCliffStart, edgeEnd, dist))
	}
	return h
}

// suppressCenterMountains squeezes heights above mountainCap into
// [mountainCap, mountainCapTop] inside minDist, releasing them over the
// following mountainRamp units.
func suppressCenterMountains(h, dist, minDist float64) float64 {
	if h <= mountainCap || dist >= minDist+mountainRamp {
		return h
	}
	t := mathx.Clamp01((h - mountainCap) / (mountainCapTop - mountainCap))
	capped := mathx.Lerp(mountainCap, mountainCapTop, t)
	return mathx.Lerp(capped, h, mathx.LerpStep(minDist, minDist+mountainRamp, dist))
}

// RoughnessPass blends the host's smooth and rough biome heights by the
// roughmap. Without a roughmap the rough height is returned unchanged.
func (c *Compositor) RoughnessPass(wx, wy, smooth, rough float64) float64 {
	m := c.maps.Scalar(Roughmap)
	if m == nil {
		return rough
	}
	r := m.Value(mathx.ToNormalized(wx), mathx.ToNormalized(wy))
	return mathx.Lerp(smooth, rough, r*c.p.RoughmapBlend)
}

// ForestFactor adjusts the host's forest factor at normalized (u,v). The
// forestmap blend runs in [0,1] and is mapped back to the native range
// before the offset and clamp.
func (c *Compositor) ForestFactor(u, v, f float64) float64 {
	if m := c.maps.Scalar(Forestmap); m != nil {
		const span = ForestFactorMax - ForestFactorMin
		n := (f - ForestFactorMin) / span
		mv := m.Value(u, v)
		n = mathx.Lerp(n, n*mv, c.p.ForestmapMultiply) + mv*c.p.ForestmapAdd
		f = ForestFactorMin + n*span
	}
	return mathx.Clamp(f+c.p.ForestAmount, ForestFactorMin, ForestFactorMax)
}
