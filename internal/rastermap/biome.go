package rastermap

import (
	"continentgen/internal/biome"
)

// BiomeMap classifies every pixel to a palette biome at decode time and
// answers queries by weighted majority of the four surrounding texels.
type BiomeMap struct {
	raster
	biomes []biome.Biome
}

// DecodeBiomeMap decodes data and resolves each pixel to its nearest palette biome.
func DecodeBiomeMap(data []byte) (*BiomeMap, error) {
	rgba, side, err := decodeRGBA(data)
	if err != nil {
		return nil, err
	}
	m := &BiomeMap{
		raster: raster{source: data, side: side},
		biomes: make([]biome.Biome, side*side),
	}
	res := biome.NewResolver()
	for y := 0; y < side; y++ {
		row := gridRow(y, side) * side
		for x := 0; x < side; x++ {
			m.biomes[row+x] = res.Resolve(rgba.RGBAAt(x, y))
		}
	}
	return m, nil
}

// LoadBiomeMap reads and decodes the image at path.
func LoadBiomeMap(path string) (*BiomeMap, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return DecodeBiomeMap(data)
}

// Texel returns the biome at grid coordinates (x,y), y counted from the bottom.
func (m *BiomeMap) Texel(x, y int) biome.Biome {
	return m.biomes[y*m.side+x]
}

type vote struct {
	b biome.Biome
	w float64
}

// Value returns the biome holding the largest share of bilinear weight around
// (u,v). Equal shares resolve to the first corner seen in the order
// (x0,y0), (x1,y0), (x0,y1), (x1,y1).
func (m *BiomeMap) Value(u, v float64) biome.Biome {
	x0, y0, x1, y1, tx, ty := corners(m.side, u, v)

	var tally [4]vote
	n := 0
	add := func(b biome.Biome, w float64) {
		for i := 0; i < n; i++ {
			if tally[i].b == b {
				tally[i].w += w
				return
			}
		}
		tally[n] = vote{b: b, w: w}
		n++
	}
	add(m.Texel(x0, y0), (1-tx)*(1-ty))
	add(m.Texel(x1, y0), tx*(1-ty))
	add(m.Texel(x0, y1), (1-tx)*ty)
	add(m.Texel(x1, y1), tx*ty)

	best := tally[0]
	for i := 1; i < n; i++ {
		if tally[i].w > best.w {
			best = tally[i]
		}
	}
	return best.b
}
