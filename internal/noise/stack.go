package noise

import (
	"log"
	"time"

	"continentgen/internal/mathx"
	"continentgen/internal/profiling"
)

type layer struct {
	noise *WarpedNoise
	mask  *WarpedNoise
}

func newLayer(l Layer, globalScale float64) layer {
	out := layer{noise: NewWarpedNoise(l.Noise, l.Warp, globalScale)}
	if l.Mask != nil {
		out.mask = NewWarpedNoise(*l.Mask, l.MaskWarp, globalScale)
	}
	return out
}

func (l layer) apply(x, y, in float64) float64 {
	blended := l.noise.Apply(x, y, in)
	if l.mask == nil {
		return blended
	}
	return mathx.Lerp(in, blended, l.mask.Value(x, y))
}

// Stack is an immutable evaluator built once per settings change.
type Stack struct {
	base   layer
	layers []layer
}

// NewStack constructs and calibrates every noise in the stack.
func NewStack(s StackSettings, globalScale float64) *Stack {
	defer profiling.Track("noise.NewStack")()
	start := time.Now()

	st := &Stack{
		base:   newLayer(s.Base, globalScale),
		layers: make([]layer, len(s.Layers)),
	}
	for i, l := range s.Layers {
		st.layers[i] = newLayer(l, globalScale)
	}
	log.Printf("noise: built stack with %d layer(s) in %v", len(s.Layers)+1, time.Since(start))
	return st
}

// Layers returns the number of layers after the base layer.
func (s *Stack) Layers() int { return len(s.layers) }

// Evaluate accumulates every layer at world (x,y), starting from seed.
func (s *Stack) Evaluate(x, y, seed float64) float64 {
	v := s.base.apply(x, y, seed)
	for _, l := range s.layers {
		v = l.apply(x, y, v)
	}
	return v
}
