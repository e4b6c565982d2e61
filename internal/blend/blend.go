// Package blend implements the Photoshop-style scalar blend modes used to
// merge a noise layer into the accumulated terrain value.
//
// Division-like modes (ColorDodge, ColorBurn, Divide) are not guarded: a zero
// denominator yields +Inf, -Inf or NaN and that value propagates.
package blend

import (
	"fmt"
	"math"
)

// Mode selects a blend formula.
type Mode int

const (
	Normal Mode = iota
	Dissolve
	Darken
	Multiply
	ColorBurn
	LinearBurn
	Lighten
	Screen
	ColorDodge
	LinearDodge
	Overlay
	SoftLight
	HardLight
	VividLight
	LinearLight
	PinLight
	HardMix
	Difference
	Exclusion
	Subtract
	Divide
)

var modeNames = [...]string{
	Normal:      "Normal",
	Dissolve:    "Dissolve",
	Darken:      "Darken",
	Multiply:    "Multiply",
	ColorBurn:   "ColorBurn",
	LinearBurn:  "LinearBurn",
	Lighten:     "Lighten",
	Screen:      "Screen",
	ColorDodge:  "ColorDodge",
	LinearDodge: "LinearDodge",
	Overlay:     "Overlay",
	SoftLight:   "SoftLight",
	HardLight:   "HardLight",
	VividLight:  "VividLight",
	LinearLight: "LinearLight",
	PinLight:    "PinLight",
	HardMix:     "HardMix",
	Difference:  "Difference",
	Exclusion:   "Exclusion",
	Subtract:    "Subtract",
	Divide:      "Divide",
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range modeNames {
		out[i] = Mode(i)
	}
	return out
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode resolves a mode by its name.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown blend mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Apply combines base a with layer b.
func Apply(m Mode, a, b float64) float64 {
	switch m {
	case Normal, Dissolve:
		// Dissolve has no meaning for a continuous scalar field and falls back to Normal.
		return b
	case Darken:
		return math.Min(a, b)
	case Multiply:
		return a * b
	case ColorBurn:
		return 1 - (1-a)/b
	case LinearBurn:
		return a + b - 1
	case Lighten:
		return math.Max(a, b)
	case Screen:
		return 1 - (1-a)*(1-b)
	case ColorDodge:
		return a / (1 - b)
	case LinearDodge:
		return a + b
	case Overlay:
		if a < 0.5 {
			return 2 * a * b
		}
		return 1 - 2*(1-a)*(1-b)
	case SoftLight:
		if b < 0.5 {
			return 2*a*b + a*a*(1-2*b)
		}
		return 2*a*(1-b) + math.Sqrt(a)*(2*b-1)
	case HardLight:
		return Apply(Overlay, b, a)
	case VividLight:
		if b < 0.5 {
			return Apply(ColorBurn, a, 2*b)
		}
		return Apply(ColorDodge, a, 2*(b-0.5))
	case LinearLight:
		return a + 2*b - 1
	case PinLight:
		if b < 0.5 {
			return math.Min(a, 2*b)
		}
		return math.Max(a, 2*(b-0.5))
	case HardMix:
		if Apply(VividLight, a, b) < 0.5 {
			return 0
		}
		return 1
	case Difference:
		return math.Abs(a - b)
	case Exclusion:
		return a + b - 2*a*b
	case Subtract:
		return a - b
	case Divide:
		return a / b
	}
	return b
}
