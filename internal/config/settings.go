package config

import (
	"continentgen/internal/noise"
	"continentgen/internal/terrain"
)

// CurrentVersion is the settings format written by this build.
const CurrentVersion = 3

// Position is a world-space coordinate pair.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Settings is the current settings document. Older formats are upgraded
// into it on decode.
type Settings struct {
	Version int   `json:"version" jsonschema:"required"`
	Enabled bool  `json:"enabled"`
	Seed    int64 `json:"seed"`

	GlobalScale        float64 `json:"globalScale"`
	MountainsAmount    float64 `json:"mountainsAmount"`
	SeaLevelAdjustment float64 `json:"seaLevelAdjustment"`

	MaxRidgeHeight           float64 `json:"maxRidgeHeight"`
	RidgeScale               float64 `json:"ridgeScale"`
	RidgeBlendSigmoidB       float64 `json:"ridgeBlendSigmoidB"`
	RidgeBlendSigmoidXOffset float64 `json:"ridgeBlendSigmoidXOffset"`

	HeightmapPath   string  `json:"heightmapPath,omitempty"`
	HeightmapAmount float64 `json:"heightmapAmount"`
	HeightmapBlend  float64 `json:"heightmapBlend"`
	HeightmapAdd    float64 `json:"heightmapAdd"`
	HeightmapMask   float64 `json:"heightmapMask"`

	RoughmapPath  string  `json:"roughmapPath,omitempty"`
	RoughmapBlend float64 `json:"roughmapBlend"`

	FlatmapPath            string  `json:"flatmapPath,omitempty"`
	FlatmapBlend           float64 `json:"flatmapBlend"`
	UseRoughInvertedAsFlat bool    `json:"useRoughInvertedAsFlat"`

	ForestmapPath     string  `json:"forestmapPath,omitempty"`
	ForestmapMultiply float64 `json:"forestmapMultiply"`
	ForestmapAdd      float64 `json:"forestmapAdd"`
	ForestAmount      float64 `json:"forestAmount"`

	BiomemapPath string `json:"biomemapPath,omitempty"`
	SpawnmapPath string `json:"spawnmapPath,omitempty"`

	OceanChannels            bool `json:"oceanChannels"`
	DisableMapEdgeDropoff    bool `json:"disableMapEdgeDropoff"`
	MountainsAllowedAtCenter bool `json:"mountainsAllowedAtCenter"`

	NoiseStack    *noise.StackSettings `json:"noiseStack,omitempty"`
	StartPosition *Position            `json:"startPosition,omitempty"`
}

// DefaultSettings returns an enabled current-version document with no maps.
func DefaultSettings() Settings {
	p := terrain.DefaultParams()
	return Settings{
		Version:                  CurrentVersion,
		Enabled:                  true,
		GlobalScale:              p.GlobalScale,
		MountainsAmount:          p.MountainsAmount,
		MaxRidgeHeight:           p.MaxRidgeHeight,
		RidgeScale:               p.RidgeScale,
		RidgeBlendSigmoidB:       p.RidgeBlendSigmoidB,
		RidgeBlendSigmoidXOffset: p.RidgeBlendSigmoidXOffset,
		HeightmapAmount:          p.HeightmapAmount,
		HeightmapBlend:           p.HeightmapBlend,
		RoughmapBlend:            p.RoughmapBlend,
		ForestmapMultiply:        p.ForestmapMultiply,
		OceanChannels:            p.OceanChannels,
	}
}

// HeightAlgorithm selects the height pipeline for the document's version.
// Version 1 worlds keep the original pipeline.
func (s Settings) HeightAlgorithm() terrain.Algorithm {
	if s.Version < 2 {
		return terrain.V1
	}
	return terrain.V2
}

// Params converts the numeric settings into compositor inputs.
func (s Settings) Params() terrain.Params {
	return terrain.Params{
		Seed:                     s.Seed,
		GlobalScale:              s.GlobalScale,
		MountainsAmount:          s.MountainsAmount,
		SeaLevelAdjustment:       s.SeaLevelAdjustment,
		MaxRidgeHeight:           s.MaxRidgeHeight,
		RidgeScale:               s.RidgeScale,
		RidgeBlendSigmoidB:       s.RidgeBlendSigmoidB,
		RidgeBlendSigmoidXOffset: s.RidgeBlendSigmoidXOffset,
		HeightmapAmount:          s.HeightmapAmount,
		HeightmapBlend:           s.HeightmapBlend,
		HeightmapAdd:             s.HeightmapAdd,
		HeightmapMask:            s.HeightmapMask,
		FlatmapBlend:             s.FlatmapBlend,
		UseRoughInvertedAsFlat:   s.UseRoughInvertedAsFlat,
		RoughmapBlend:            s.RoughmapBlend,
		ForestmapMultiply:        s.ForestmapMultiply,
		ForestmapAdd:             s.ForestmapAdd,
		ForestAmount:             s.ForestAmount,
		OceanChannels:            s.OceanChannels,
		DisableMapEdgeDropoff:    s.DisableMapEdgeDropoff,
		MountainsAllowedAtCenter: s.MountainsAllowedAtCenter,
	}
}

// MapPath returns the configured file path for a raster slot, or "".
func (s Settings) MapPath(k terrain.Kind) string {
	switch k {
	case terrain.Heightmap:
		return s.HeightmapPath
	case terrain.Roughmap:
		return s.RoughmapPath
	case terrain.Flatmap:
		return s.FlatmapPath
	case terrain.Forestmap:
		return s.ForestmapPath
	case terrain.Biomemap:
		return s.BiomemapPath
	case terrain.Spawnmap:
		return s.SpawnmapPath
	}
	return ""
}
