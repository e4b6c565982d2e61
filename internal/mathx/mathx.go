package mathx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// WorldRadius is the playable radius in world units.
	WorldRadius = 10000.0
	// EdgeSize is the width of the dropoff band outside WorldRadius.
	EdgeSize = 500.0
	// WorldExtent is the half-width of the square world, symmetric about the origin.
	WorldExtent = WorldRadius + EdgeSize
)

// Lerp performs linear interpolation. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}

// LerpStep is the clamped inverse lerp of x over [lo,hi].
func LerpStep(lo, hi, x float64) float64 {
	return Clamp01((x - lo) / (hi - lo))
}

// SmoothStep is LerpStep eased with 3t^2 - 2t^3.
func SmoothStep(lo, hi, x float64) float64 {
	t := LerpStep(lo, hi, x)
	return t * t * (3 - 2*t)
}

// Fade is the quintic 6t^5 - 15t^4 + 10t^3 curve.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Length returns the distance of (x,y) from the origin.
func Length(x, y float64) float64 {
	return mgl64.Vec2{x, y}.Len()
}

// FloorToInt floors d and converts it to int.
func FloorToInt(d float64) int {
	return int(math.Floor(d))
}

// ToNormalized maps a world coordinate in [-WorldExtent, WorldExtent] to [0,1].
// ToWorld is its exact inverse formula; both sides of the boundary must use this pair.
func ToNormalized(w float64) float64 {
	return w/(WorldExtent*2) + 0.5
}

// ToWorld maps a normalized [0,1] coordinate back to world units.
func ToWorld(n float64) float64 {
	return (n - 0.5) * (WorldExtent * 2)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
