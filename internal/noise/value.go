package noise

import (
	"math"

	"continentgen/internal/mathx"
)

// Lattice multipliers for hash2. Each axis gets its own odd constant so that
// no translation of the lattice maps onto itself.
const (
	primeX    = 0x9E3779B97F4A7C15
	primeY    = 0xC2B2AE3D27D4EB4F
	primeSeed = 0x165667B19E3779F9
)

// hash2 scrambles a lattice corner and seed through the SplitMix64 finalizer.
func hash2(x, y int64, seed int64) uint64 {
	h := uint64(x)*primeX ^ uint64(y)*primeY ^ uint64(seed)*primeSeed
	h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 27)) * 0x94D049BB133111EB
	return h ^ (h >> 31)
}

// latticeValue is the corner value in [-1,1], taken from the low 32 hash bits.
func latticeValue(x, y int64, seed int64) float64 {
	return float64(hash2(x, y, seed)&0xFFFFFFFF)/float64(0xFFFFFFFF)*2 - 1
}

// valueNoise is the Value family: bilinear blend of the four surrounding
// corners, eased by the quintic fade.
func valueNoise(x, y float64, seed int64) float64 {
	cx, cy := math.Floor(x), math.Floor(y)
	ix, iy := int64(cx), int64(cy)
	tx, ty := mathx.Fade(x-cx), mathx.Fade(y-cy)

	south := mathx.Lerp(latticeValue(ix, iy, seed), latticeValue(ix+1, iy, seed), tx)
	north := mathx.Lerp(latticeValue(ix, iy+1, seed), latticeValue(ix+1, iy+1, seed), tx)
	return mathx.Lerp(south, north, ty)
}

func cubicLerp(a, b, c, d, t float64) float64 {
	p := (d - c) - (a - b)
	return t*t*t*p + t*t*((a-b)-p) + t*(c-a) + b
}

// valueCubicNoise interpolates a 4x4 lattice neighbourhood with Catmull-Rom style cubics.
func valueCubicNoise(x, y float64, seed int64) float64 {
	x1 := math.Floor(x)
	y1 := math.Floor(y)
	tx := x - x1
	ty := y - y1
	ix, iy := int64(x1), int64(y1)

	var rows [4]float64
	for j := int64(-1); j <= 2; j++ {
		rows[j+1] = cubicLerp(
			latticeValue(ix-1, iy+j, seed),
			latticeValue(ix, iy+j, seed),
			latticeValue(ix+1, iy+j, seed),
			latticeValue(ix+2, iy+j, seed),
			tx,
		)
	}
	// Cubic overshoot is bounded by 1.5 per axis.
	return cubicLerp(rows[0], rows[1], rows[2], rows[3], ty) / (1.5 * 1.5)
}
