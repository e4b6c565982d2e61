package rastermap

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ScalarMap is a single-channel float grid used for heightmaps, roughmaps,
// flatmaps and forestmaps. Values are luminance in [0,1].
type ScalarMap struct {
	raster
	values []float32
}

// DecodeScalarMap decodes data into a ScalarMap using 16-bit grey luminance.
func DecodeScalarMap(data []byte) (*ScalarMap, error) {
	img, side, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	gray := image.NewGray16(image.Rect(0, 0, side, side))
	xdraw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, xdraw.Src)

	m := &ScalarMap{
		raster: raster{source: data, side: side},
		values: make([]float32, side*side),
	}
	for y := 0; y < side; y++ {
		row := gridRow(y, side) * side
		for x := 0; x < side; x++ {
			m.values[row+x] = float32(gray.Gray16At(x, y).Y) / 65535
		}
	}
	return m, nil
}

// LoadScalarMap reads and decodes the image at path.
func LoadScalarMap(path string) (*ScalarMap, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return DecodeScalarMap(data)
}

// Texel returns the stored value at grid coordinates (x,y), y counted from the bottom.
func (m *ScalarMap) Texel(x, y int) float64 {
	return float64(m.values[y*m.side+x])
}

// Value bilinearly interpolates the map at normalized (u,v).
func (m *ScalarMap) Value(u, v float64) float64 {
	x0, y0, x1, y1, tx, ty := corners(m.side, u, v)
	v00 := m.Texel(x0, y0)
	v10 := m.Texel(x1, y0)
	v01 := m.Texel(x0, y1)
	v11 := m.Texel(x1, y1)
	i0 := v00 + tx*(v10-v00)
	i1 := v01 + tx*(v11-v01)
	return i0 + ty*(i1-i0)
}
