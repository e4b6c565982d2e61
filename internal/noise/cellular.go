package noise

import (
	"math"
)

// cellularNoise is Worley noise over a unit grid with one jittered feature
// point per cell.
func cellularNoise(x, y float64, seed int64, dist CellularDistance, ret CellularReturn, jitter float64) float64 {
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))

	d0, d1 := math.MaxFloat64, math.MaxFloat64
	var closest uint64

	for j := int64(-1); j <= 1; j++ {
		for i := int64(-1); i <= 1; i++ {
			gx, gy := cx+i, cy+j
			h := hash2(gx, gy, seed)
			// Two independent 32-bit halves give the in-cell offset.
			ox := float64(h&0xFFFFFFFF)/float64(0xFFFFFFFF) - 0.5
			oy := float64(h>>32)/float64(0xFFFFFFFF) - 0.5
			px := float64(gx) + 0.5 + ox*jitter
			py := float64(gy) + 0.5 + oy*jitter

			dx, dy := px-x, py-y
			var d float64
			switch dist {
			case EuclideanSq:
				d = dx*dx + dy*dy
			case Manhattan:
				d = math.Abs(dx) + math.Abs(dy)
			case Hybrid:
				d = math.Abs(dx) + math.Abs(dy) + dx*dx + dy*dy
			default:
				d = math.Sqrt(dx*dx + dy*dy)
			}

			if d < d0 {
				d1 = d0
				d0 = d
				closest = h
			} else if d < d1 {
				d1 = d
			}
		}
	}

	switch ret {
	case CellValue:
		return float64(closest>>11)/float64(1<<53)*2 - 1
	case Distance:
		return d0 - 1
	case Distance2:
		return d1 - 1
	case Distance2Add:
		return (d1+d0)*0.5 - 1
	case Distance2Sub:
		return d1 - d0 - 1
	case Distance2Mul:
		return d1*d0*0.5 - 1
	case Distance2Div:
		return d0/d1 - 1
	}
	return d0 - 1
}
