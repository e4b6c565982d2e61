package terrain

import (
	"fmt"
	"strings"
	"sync/atomic"

	"continentgen/internal/rastermap"
)

// Kind names one raster map slot.
type Kind int

const (
	Heightmap Kind = iota
	Roughmap
	Flatmap
	Forestmap
	Biomemap
	Spawnmap
)

var kindNames = []string{"heightmap", "roughmap", "flatmap", "forestmap", "biomemap", "spawnmap"}

// Kinds lists every slot in declaration order.
func Kinds() []Kind {
	return []Kind{Heightmap, Roughmap, Flatmap, Forestmap, Biomemap, Spawnmap}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the lower-case slot name.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown raster map kind %q", s)
}

// Maps holds the decoded raster maps. An absent map is nil and means the
// feature it drives is off. Slots are swapped wholesale so concurrent readers
// always see either the old map or the new one.
type Maps struct {
	height atomic.Pointer[rastermap.ScalarMap]
	rough  atomic.Pointer[rastermap.ScalarMap]
	flat   atomic.Pointer[rastermap.ScalarMap]
	forest atomic.Pointer[rastermap.ScalarMap]
	biomes atomic.Pointer[rastermap.BiomeMap]
	spawns atomic.Pointer[rastermap.SpawnMap]
}

func (m *Maps) scalar(k Kind) *atomic.Pointer[rastermap.ScalarMap] {
	switch k {
	case Heightmap:
		return &m.height
	case Roughmap:
		return &m.rough
	case Flatmap:
		return &m.flat
	case Forestmap:
		return &m.forest
	}
	return nil
}

// Scalar returns the scalar map in slot k, or nil.
func (m *Maps) Scalar(k Kind) *rastermap.ScalarMap {
	if p := m.scalar(k); p != nil {
		return p.Load()
	}
	return nil
}

// SetScalar replaces the scalar map in slot k. sm may be nil to disable it.
func (m *Maps) SetScalar(k Kind, sm *rastermap.ScalarMap) {
	p := m.scalar(k)
	if p == nil {
		panic(fmt.Sprintf("terrain: %v is not a scalar map slot", k))
	}
	p.Store(sm)
}

// Biomes returns the biome map, or nil.
func (m *Maps) Biomes() *rastermap.BiomeMap { return m.biomes.Load() }

// SetBiomes replaces the biome map.
func (m *Maps) SetBiomes(b *rastermap.BiomeMap) { m.biomes.Store(b) }

// Spawns returns the spawn map, or nil.
func (m *Maps) Spawns() *rastermap.SpawnMap { return m.spawns.Load() }

// SetSpawns replaces the spawn map.
func (m *Maps) SetSpawns(s *rastermap.SpawnMap) { m.spawns.Store(s) }

// Present reports whether slot k holds a map.
func (m *Maps) Present(k Kind) bool {
	switch k {
	case Biomemap:
		return m.Biomes() != nil
	case Spawnmap:
		return m.Spawns() != nil
	}
	return m.Scalar(k) != nil
}

// Clear empties slot k.
func (m *Maps) Clear(k Kind) {
	switch k {
	case Biomemap:
		m.SetBiomes(nil)
	case Spawnmap:
		m.SetSpawns(nil)
	default:
		m.SetScalar(k, nil)
	}
}
