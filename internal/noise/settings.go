package noise

import (
	"fmt"

	"continentgen/internal/blend"
)

// Type selects the base noise family.
type Type int

const (
	OpenSimplex2 Type = iota
	OpenSimplex2S
	Cellular
	Perlin
	ValueCubic
	Value
)

var typeNames = []string{"OpenSimplex2", "OpenSimplex2S", "Cellular", "Perlin", "ValueCubic", "Value"}

// FractalType selects how octaves are combined.
type FractalType int

const (
	FractalNone FractalType = iota
	FractalFBm
	FractalRidged
	FractalPingPong
)

var fractalNames = []string{"None", "FBm", "Ridged", "PingPong"}

// CellularDistance is the metric used by Cellular noise.
type CellularDistance int

const (
	Euclidean CellularDistance = iota
	EuclideanSq
	Manhattan
	Hybrid
)

var distanceNames = []string{"Euclidean", "EuclideanSq", "Manhattan", "Hybrid"}

// CellularReturn selects the value Cellular noise reports.
type CellularReturn int

const (
	CellValue CellularReturn = iota
	Distance
	Distance2
	Distance2Add
	Distance2Sub
	Distance2Mul
	Distance2Div
)

var returnNames = []string{"CellValue", "Distance", "Distance2", "Distance2Add", "Distance2Sub", "Distance2Mul", "Distance2Div"}

// WarpType selects the domain warp algorithm.
type WarpType int

const (
	WarpOpenSimplex2 WarpType = iota
	WarpOpenSimplex2Reduced
	WarpBasicGrid
)

var warpNames = []string{"OpenSimplex2", "OpenSimplex2Reduced", "BasicGrid"}

// Settings describes one noise generator and the filters applied to its
// normalized output. Treat it as immutable once a generator is built from it.
type Settings struct {
	Seed      int64   `json:"seed"`
	NoiseType Type    `json:"noiseType"`
	Frequency float64 `json:"frequency"`

	FractalType      FractalType `json:"fractalType"`
	Octaves          int         `json:"octaves"`
	Lacunarity       float64     `json:"lacunarity"`
	Gain             float64     `json:"gain"`
	WeightedStrength float64     `json:"weightedStrength"`
	PingPongStrength float64     `json:"pingPongStrength"`

	CellularDistance CellularDistance `json:"cellularDistance"`
	CellularReturn   CellularReturn   `json:"cellularReturn"`
	CellularJitter   float64          `json:"cellularJitter"`

	WarpType      WarpType `json:"warpType"`
	WarpAmplitude float64  `json:"warpAmplitude"`

	Invert          bool    `json:"invert"`
	SmoothThreshold bool    `json:"smoothThreshold"`
	SmoothMin       float64 `json:"smoothMin"`
	SmoothMax       float64 `json:"smoothMax"`
	Threshold       bool    `json:"threshold"`
	ThresholdValue  float64 `json:"thresholdValue"`
	RangeStart      float64 `json:"rangeStart"`
	RangeEnd        float64 `json:"rangeEnd"`
	Opacity         float64 `json:"opacity"`

	BlendMode blend.Mode `json:"blendMode"`
}

// DefaultSettings returns settings whose filter chain is the identity.
func DefaultSettings() Settings {
	return Settings{
		Seed:             1337,
		NoiseType:        OpenSimplex2,
		Frequency:        0.0005,
		FractalType:      FractalFBm,
		Octaves:          4,
		Lacunarity:       2,
		Gain:             0.5,
		PingPongStrength: 2,
		CellularJitter:   1,
		WarpType:         WarpOpenSimplex2,
		WarpAmplitude:    30,
		SmoothMax:        1,
		ThresholdValue:   0.5,
		RangeEnd:         1,
		Opacity:          1,
		BlendMode:        blend.Normal,
	}
}

// Layer groups a noise with its optional warp, mask and mask warp.
type Layer struct {
	Noise    Settings  `json:"noise"`
	Warp     *Settings `json:"warp,omitempty"`
	Mask     *Settings `json:"mask,omitempty"`
	MaskWarp *Settings `json:"maskWarp,omitempty"`
}

// StackSettings is a base layer followed by layers blended in order.
type StackSettings struct {
	Base   Layer   `json:"base"`
	Layers []Layer `json:"layers,omitempty"`
}

func enumString(names []string, v int, kind string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func enumParse(names []string, b []byte, kind string) (int, error) {
	s := string(b)
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func (t Type) String() string { return enumString(typeNames, int(t), "Type") }
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
func (t *Type) UnmarshalText(b []byte) error {
	v, err := enumParse(typeNames, b, "noise type")
	*t = Type(v)
	return err
}

func (f FractalType) String() string { return enumString(fractalNames, int(f), "FractalType") }
func (f FractalType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
func (f *FractalType) UnmarshalText(b []byte) error {
	v, err := enumParse(fractalNames, b, "fractal type")
	*f = FractalType(v)
	return err
}

func (d CellularDistance) String() string { return enumString(distanceNames, int(d), "CellularDistance") }
func (d CellularDistance) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
func (d *CellularDistance) UnmarshalText(b []byte) error {
	v, err := enumParse(distanceNames, b, "cellular distance")
	*d = CellularDistance(v)
	return err
}

func (r CellularReturn) String() string { return enumString(returnNames, int(r), "CellularReturn") }
func (r CellularReturn) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
func (r *CellularReturn) UnmarshalText(b []byte) error {
	v, err := enumParse(returnNames, b, "cellular return")
	*r = CellularReturn(v)
	return err
}

func (w WarpType) String() string { return enumString(warpNames, int(w), "WarpType") }
func (w WarpType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
func (w *WarpType) UnmarshalText(b []byte) error {
	v, err := enumParse(warpNames, b, "warp type")
	*w = WarpType(v)
	return err
}
