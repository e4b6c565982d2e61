package engine

import (
	"math/rand/v2"

	"continentgen/internal/heightcache"
	"continentgen/internal/terrain"
)

// HeightFunc is a host-supplied height source in world coordinates.
type HeightFunc func(wx, wy float64) float64

// Option configures an Engine.
type Option func(*Engine)

// WithHostHeight sets the height source used while the settings are
// disabled.
func WithHostHeight(fn HeightFunc) Option {
	return func(e *Engine) { e.hostHeight = fn }
}

// WithMinMountainDistance sets the radius around the world center in which
// mountains are suppressed.
func WithMinMountainDistance(d float64) Option {
	return func(e *Engine) { e.minMountainDistance = d }
}

// WithSpawnRand sets the RNG used to pick spawn points when decoding the
// spawn map. Without it picks are seeded from the clock.
func WithSpawnRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.spawnRand = rng }
}

// WithCacheCapacity overrides the height cache capacity.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) { e.cacheCapacity = n }
}

func defaults(e *Engine) {
	e.minMountainDistance = terrain.DefaultMinMountainDistance
	e.cacheCapacity = heightcache.DefaultCapacity
}
