package terrain

import "fmt"

// Algorithm selects the height pipeline. Worlds generated with older
// settings keep V1 so their terrain does not shift.
type Algorithm int

const (
	V1 Algorithm = iota + 1
	V2
)

func (a Algorithm) String() string {
	switch a {
	case V1:
		return "V1"
	case V2:
		return "V2"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Native forest factor range of the host's vegetation placement.
const (
	ForestFactorMin = 0.145071
	ForestFactorMax = 1.850145
)

const (
	seaLevel       = 0.05
	heightBias     = 0.07
	mountainCap    = 0.28
	mountainCapTop = 0.38
	mountainRamp   = 400.0

	channelNear     = 744.0
	channelFar      = 1000.0
	channelMaskLow  = 0.02
	channelMaskHigh = 0.12

	edgeStart      = 10000.0
	edgeEnd        = 10500.0
	edgeCliffStart = 10490.0
	edgeHeight     = -0.2
	edgeCliff      = -2.0

	// DefaultMinMountainDistance is the host's usual center exclusion radius.
	DefaultMinMountainDistance = 1000.0
)

// Params are the numeric compositor inputs. The zero value of each blend
// amount turns its step into a pass-through.
type Params struct {
	Seed        int64
	GlobalScale float64

	// MountainsAmount is the exponent term n of the mountain shaping curve.
	MountainsAmount    float64
	SeaLevelAdjustment float64

	MaxRidgeHeight           float64
	RidgeScale               float64
	RidgeBlendSigmoidB       float64
	RidgeBlendSigmoidXOffset float64

	HeightmapAmount float64
	HeightmapBlend  float64
	HeightmapAdd    float64
	HeightmapMask   float64

	FlatmapBlend           float64
	UseRoughInvertedAsFlat bool

	RoughmapBlend float64

	ForestmapMultiply float64
	ForestmapAdd      float64
	ForestAmount      float64

	OceanChannels            bool
	DisableMapEdgeDropoff    bool
	MountainsAllowedAtCenter bool
}

// DefaultParams mirrors an unmodified world: scale 1, no maps, channels on.
func DefaultParams() Params {
	return Params{
		GlobalScale:              1,
		MountainsAmount:          0.5,
		MaxRidgeHeight:           0.5,
		RidgeScale:               1,
		RidgeBlendSigmoidB:       24,
		RidgeBlendSigmoidXOffset: -0.5,
		HeightmapAmount:          1,
		HeightmapBlend:           1,
		FlatmapBlend:             0,
		RoughmapBlend:            1,
		ForestmapMultiply:        1,
		OceanChannels:            true,
	}
}
