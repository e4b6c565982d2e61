// Package engine exposes terrain synthesis to a host world generator.
// World coordinates at this boundary span +-10500; biome, forest and spawn
// lookups take or return normalized [0,1] map coordinates where noted.
package engine

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"continentgen/internal/biome"
	"continentgen/internal/config"
	"continentgen/internal/heightcache"
	"continentgen/internal/mathx"
	"continentgen/internal/noise"
	"continentgen/internal/rastermap"
	"continentgen/internal/terrain"
)

// StartSpawnID is the spawn identifier marking the player start.
const StartSpawnID = "StartTemple"

// Engine answers height, biome, forest and spawn queries for one settings
// document. Queries are safe for concurrent use.
type Engine struct {
	settings config.Settings
	maps     *terrain.Maps
	comp     *terrain.Compositor
	cache    *heightcache.Cache

	hostHeight          HeightFunc
	minMountainDistance float64
	spawnRand           *rand.Rand
	cacheCapacity       int

	// serializes reloads; queries never take it
	reloadMu sync.Mutex
}

// New validates s, decodes every configured raster map and builds the
// compositor. A map that fails to load is logged and left disabled. Disabled
// settings load no maps.
func New(s config.Settings, opts ...Option) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{settings: s, maps: &terrain.Maps{}}
	defaults(e)
	for _, opt := range opts {
		opt(e)
	}
	e.cache = heightcache.New(e.cacheCapacity)

	if s.Enabled {
		for _, k := range terrain.Kinds() {
			if err := e.load(k); err != nil {
				log.Printf("engine: %v disabled: %v", k, err)
			}
		}
	}

	var stack *noise.Stack
	if s.Enabled && s.NoiseStack != nil {
		stack = noise.NewStack(*s.NoiseStack, s.GlobalScale)
	}
	if s.Enabled {
		e.comp = terrain.NewCompositor(s.HeightAlgorithm(), s.Params(), e.maps, stack, e.minMountainDistance)
	} else {
		p := terrain.DefaultParams()
		p.Seed = s.Seed
		e.comp = terrain.NewCompositor(terrain.V1, p, nil, nil, e.minMountainDistance)
	}
	return e, nil
}

// load decodes the map configured for k into its slot. An unconfigured slot
// is left empty.
func (e *Engine) load(k terrain.Kind) error {
	path := e.settings.MapPath(k)
	if path == "" {
		return nil
	}
	var err error
	switch k {
	case terrain.Biomemap:
		var m *rastermap.BiomeMap
		if m, err = rastermap.LoadBiomeMap(path); err == nil {
			e.maps.SetBiomes(m)
		}
	case terrain.Spawnmap:
		var m *rastermap.SpawnMap
		if m, err = rastermap.LoadSpawnMap(path, e.spawnRand); err == nil {
			e.maps.SetSpawns(m)
		}
	default:
		var m *rastermap.ScalarMap
		if m, err = rastermap.LoadScalarMap(path); err == nil {
			e.maps.SetScalar(k, m)
		}
	}
	if err != nil {
		e.maps.Clear(k)
		return fmt.Errorf("load %v %s: %w", k, path, err)
	}
	return nil
}

// Settings returns the settings the engine was built from.
func (e *Engine) Settings() config.Settings { return e.settings }

// Maps returns the live raster map set.
func (e *Engine) Maps() *terrain.Maps { return e.maps }

// Height returns the cached base height at world (wx, wy).
func (e *Engine) Height(wx, wy float32) float32 {
	return e.cache.GetOrInsert(wx, wy, func() float32 {
		return float32(e.baseHeight(float64(wx), float64(wy)))
	})
}

func (e *Engine) baseHeight(wx, wy float64) float64 {
	if !e.settings.Enabled && e.hostHeight != nil {
		return e.hostHeight(wx, wy)
	}
	return e.comp.Height(wx, wy)
}

// BiomeHeightRoughnessPass blends the host's smooth and rough biome heights
// at world (wx, wy). It is not cached.
func (e *Engine) BiomeHeightRoughnessPass(wx, wy, smooth, rough float32) float32 {
	if !e.settings.Enabled {
		return rough
	}
	return float32(e.comp.RoughnessPass(float64(wx), float64(wy), float64(smooth), float64(rough)))
}

// BiomeOverride returns the biome painted at normalized (nx, ny), if a
// biome map is loaded.
func (e *Engine) BiomeOverride(nx, ny float32) (biome.Biome, bool) {
	m := e.maps.Biomes()
	if !e.settings.Enabled || m == nil {
		return biome.None, false
	}
	return m.Value(float64(nx), float64(ny)), true
}

// ForestFactor adjusts the host's forest factor at normalized (nx, ny).
func (e *Engine) ForestFactor(nx, ny, vanilla float32) float32 {
	if !e.settings.Enabled {
		return vanilla
	}
	return float32(e.comp.ForestFactor(float64(nx), float64(ny), float64(vanilla)))
}

// TakeSpawn consumes one remaining point for id and returns it in world
// coordinates.
func (e *Engine) TakeSpawn(id string) (mgl32.Vec2, bool) {
	m := e.maps.Spawns()
	if !e.settings.Enabled || m == nil {
		return mgl32.Vec2{}, false
	}
	p, ok := m.TakeOne(id)
	if !ok {
		return mgl32.Vec2{}, false
	}
	return toWorld(p), true
}

// AllSpawns returns every remaining point for id in world coordinates
// without consuming them.
func (e *Engine) AllSpawns(id string) []mgl32.Vec2 {
	m := e.maps.Spawns()
	if !e.settings.Enabled || m == nil {
		return nil
	}
	pts := m.PeekAll(id)
	for i, p := range pts {
		pts[i] = toWorld(p)
	}
	return pts
}

// StartPosition returns the configured start position, or the first
// remaining StartTemple spawn. The spawn is not consumed. Disabled settings
// leave the start to the host.
func (e *Engine) StartPosition() (mgl32.Vec2, bool) {
	if !e.settings.Enabled {
		return mgl32.Vec2{}, false
	}
	if sp := e.settings.StartPosition; sp != nil {
		return mgl32.Vec2{float32(sp.X), float32(sp.Y)}, true
	}
	if pts := e.AllSpawns(StartSpawnID); len(pts) > 0 {
		return pts[0], true
	}
	return mgl32.Vec2{}, false
}

// SetCacheEnabled toggles the height cache. Disabling drops its entries.
func (e *Engine) SetCacheEnabled(on bool) { e.cache.SetEnabled(on) }

// ClearCache drops every cached height.
func (e *Engine) ClearCache() { e.cache.Clear() }

// CacheLen returns the number of cached heights.
func (e *Engine) CacheLen() int { return e.cache.Len() }

// ReloadRasterMap re-decodes the map for k from its configured path. It is a
// no-op when k has no path or the settings are disabled. On failure the map is disabled. Height-affecting
// reloads clear the height cache.
func (e *Engine) ReloadRasterMap(k terrain.Kind) error {
	if !e.settings.Enabled || e.settings.MapPath(k) == "" {
		return nil
	}
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	err := e.load(k)
	switch k {
	case terrain.Heightmap, terrain.Flatmap, terrain.Roughmap:
		e.cache.Clear()
	}
	if err != nil {
		log.Printf("engine: reload %v failed, feature disabled: %v", k, err)
		return err
	}
	log.Printf("engine: reloaded %v from %s", k, e.settings.MapPath(k))
	return nil
}

func toWorld(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(mathx.ToWorld(float64(p.X()))),
		float32(mathx.ToWorld(float64(p.Y()))),
	}
}
