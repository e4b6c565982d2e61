package rastermap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrFloodFillOverrun signals a flood fill queue that outgrew its grid. It is
// raised as a panic value: it can only happen if the fill revisits pixels.
var ErrFloodFillOverrun = errors.New("flood fill queue exceeded grid area")

// SpawnColor associates a spawn identifier with the colour marking it.
// Several identifiers may share one colour.
type SpawnColor struct {
	ID    string
	Color color.RGBA
}

// SpawnPalette lists the known spawn identifiers in a fixed order.
var SpawnPalette = []SpawnColor{
	{ID: "StartTemple", Color: color.RGBA{255, 255, 255, 255}},
	{ID: "Eikthyrnir", Color: color.RGBA{255, 0, 0, 255}},
	{ID: "GDKing", Color: color.RGBA{0, 255, 0, 255}},
	{ID: "Bonemass", Color: color.RGBA{0, 0, 255, 255}},
	{ID: "Dragonqueen", Color: color.RGBA{255, 255, 0, 255}},
	{ID: "GoblinKing", Color: color.RGBA{255, 0, 255, 255}},
	{ID: "Mistlands_DvergrBossEntrance1", Color: color.RGBA{0, 255, 255, 255}},
	{ID: "Vendor_BlackForest", Color: color.RGBA{255, 128, 0, 255}},
	{ID: "Hildir_camp", Color: color.RGBA{128, 0, 255, 255}},
	{ID: "Crypt2", Color: color.RGBA{128, 128, 128, 255}},
	{ID: "Crypt3", Color: color.RGBA{128, 128, 128, 255}},
	{ID: "Crypt4", Color: color.RGBA{128, 128, 128, 255}},
	{ID: "SunkenCrypt4", Color: color.RGBA{0, 128, 128, 255}},
	{ID: "TrollCave02", Color: color.RGBA{0, 128, 0, 255}},
}

// Region is one 4-connected patch of identical colour. Grid coordinates count
// y from the bottom.
type Region struct {
	Color   color.RGBA
	Size    int             // pixel count
	Bounds  image.Rectangle // grid bounding box
	Pixel   image.Point     // chosen member, uniformly at random
	Point   mgl32.Vec2      // Pixel's centre, normalized
	SpawnID string          // empty when the colour matches no identifier
}

// SpawnMap holds one resolved point per marked region, grouped by spawn id.
type SpawnMap struct {
	raster
	regions []Region

	mu     sync.Mutex
	points map[string][]mgl32.Vec2
}

// DecodeSpawnMap flood-fills the image, picks one random member per region and
// assigns it to a random identifier sharing the region's colour. rng may be nil.
func DecodeSpawnMap(data []byte, rng *rand.Rand) (*SpawnMap, error) {
	rgba, side, err := decodeRGBA(data)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	grid := make([]color.RGBA, side*side)
	for y := 0; y < side; y++ {
		row := gridRow(y, side) * side
		for x := 0; x < side; x++ {
			grid[row+x] = rgba.RGBAAt(x, y)
		}
	}

	m := &SpawnMap{
		raster: raster{source: data, side: side},
		points: make(map[string][]mgl32.Vec2),
	}
	m.regions = floodFill(grid, side, rng)

	aliases := make(map[color.RGBA][]string)
	for _, sc := range SpawnPalette {
		aliases[sc.Color] = append(aliases[sc.Color], sc.ID)
	}

	for i := range m.regions {
		r := &m.regions[i]
		p := r.Pixel
		r.Point = mgl32.Vec2{
			(float32(p.X) + 0.5) / float32(side),
			(float32(p.Y) + 0.5) / float32(side),
		}
		ids := aliases[r.Color]
		if len(ids) == 0 {
			log.Printf("spawnmap: region of %d px with unmapped colour %v ignored", r.Size, r.Color)
			continue
		}
		r.SpawnID = ids[rng.IntN(len(ids))]
		m.points[r.SpawnID] = append(m.points[r.SpawnID], r.Point)
	}
	return m, nil
}

// LoadSpawnMap reads and decodes the image at path.
func LoadSpawnMap(path string, rng *rand.Rand) (*SpawnMap, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return DecodeSpawnMap(data, rng)
}

func isBackground(c color.RGBA) bool {
	return c.A == 0 || (c.R == 0 && c.G == 0 && c.B == 0)
}

// floodFill partitions non-background pixels into 4-connected regions of
// identical colour, scanning seeds in row-major order. Each region's Pixel is
// reservoir-sampled from rng as the fill visits it.
func floodFill(grid []color.RGBA, side int, rng *rand.Rand) []Region {
	area := side * side
	visited := make([]bool, area)
	var regions []Region
	queue := make([]int, 0, 64)

	for seed := 0; seed < area; seed++ {
		if visited[seed] || isBackground(grid[seed]) {
			continue
		}
		c := grid[seed]
		c.A = 255
		region := Region{Color: c}

		queue = append(queue[:0], seed)
		visited[seed] = true
		for head := 0; head < len(queue); head++ {
			idx := queue[head]
			x, y := idx%side, idx/side
			p := image.Point{X: x, Y: y}
			region.Size++
			region.Bounds = region.Bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
			if rng.IntN(region.Size) == 0 {
				region.Pixel = p
			}

			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				nx, ny := n[0], n[1]
				if nx < 0 || ny < 0 || nx >= side || ny >= side {
					continue
				}
				ni := ny*side + nx
				if visited[ni] || !sameColor(grid[ni], grid[seed]) {
					continue
				}
				visited[ni] = true
				queue = append(queue, ni)
				if len(queue) > area {
					panic(fmt.Errorf("%w: %d > %d", ErrFloodFillOverrun, len(queue), area))
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

func sameColor(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B && (a.A == 0) == (b.A == 0)
}

// Regions returns the discovered regions in discovery order.
func (m *SpawnMap) Regions() []Region {
	return m.regions
}

// TakeOne removes and returns one remaining point for id.
func (m *SpawnMap) TakeOne(id string) (mgl32.Vec2, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pts := m.points[id]
	if len(pts) == 0 {
		return mgl32.Vec2{}, false
	}
	p := pts[len(pts)-1]
	if len(pts) == 1 {
		delete(m.points, id)
	} else {
		m.points[id] = pts[:len(pts)-1]
	}
	return p, true
}

// PeekAll returns a copy of the remaining points for id without consuming them.
func (m *SpawnMap) PeekAll(id string) []mgl32.Vec2 {
	m.mu.Lock()
	defer m.mu.Unlock()
	pts := m.points[id]
	out := make([]mgl32.Vec2, len(pts))
	copy(out, pts)
	return out
}

// Remaining returns how many points are left for id.
func (m *SpawnMap) Remaining(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.points[id])
}

// IDs returns how many spawn identifiers still have points.
func (m *SpawnMap) IDs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.points)
}
