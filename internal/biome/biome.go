package biome

import (
	"fmt"
	"image/color"
)

// Biome is a categorical terrain classification. Values are bit flags so a
// host can combine them into biome masks.
type Biome int

const (
	None        Biome = 0
	Meadows     Biome = 1
	Swamp       Biome = 2
	Mountain    Biome = 4
	BlackForest Biome = 8
	Plains      Biome = 16
	AshLands    Biome = 32
	DeepNorth   Biome = 64
	Ocean       Biome = 256
	Mistlands   Biome = 512
)

// Entry ties a biome to the colour that paints it on a biome map.
type Entry struct {
	Biome Biome
	Name  string
	Color color.RGBA
}

// Palette is the fixed colour table biome maps are matched against.
var Palette = []Entry{
	{Biome: Ocean, Name: "Ocean", Color: color.RGBA{0, 0, 255, 255}},
	{Biome: Meadows, Name: "Meadows", Color: color.RGBA{0, 255, 0, 255}},
	{Biome: BlackForest, Name: "BlackForest", Color: color.RGBA{0, 127, 14, 255}},
	{Biome: Swamp, Name: "Swamp", Color: color.RGBA{127, 51, 0, 255}},
	{Biome: Mountain, Name: "Mountain", Color: color.RGBA{255, 255, 255, 255}},
	{Biome: Plains, Name: "Plains", Color: color.RGBA{255, 216, 0, 255}},
	{Biome: Mistlands, Name: "Mistlands", Color: color.RGBA{64, 64, 64, 255}},
	{Biome: DeepNorth, Name: "DeepNorth", Color: color.RGBA{0, 255, 255, 255}},
	{Biome: AshLands, Name: "AshLands", Color: color.RGBA{255, 0, 0, 255}},
}

func (b Biome) String() string {
	for _, e := range Palette {
		if e.Biome == b {
			return e.Name
		}
	}
	if b == None {
		return "None"
	}
	return fmt.Sprintf("Biome(%d)", int(b))
}

// ColorOf returns the palette colour for b, or black if b is not in the palette.
func ColorOf(b Biome) color.RGBA {
	for _, e := range Palette {
		if e.Biome == b {
			return e.Color
		}
	}
	return color.RGBA{A: 255}
}

// Nearest returns the palette biome closest to c by squared RGB distance.
// Ties keep the earlier palette entry.
func Nearest(c color.RGBA) Biome {
	best := Palette[0].Biome
	bestDist := -1
	for _, e := range Palette {
		dr := int(c.R) - int(e.Color.R)
		dg := int(c.G) - int(e.Color.G)
		db := int(c.B) - int(e.Color.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = e.Biome
			bestDist = d
		}
	}
	return best
}

// Resolver memoizes Nearest per unique colour. It is not safe for concurrent use;
// decoders own one for the duration of a decode.
type Resolver struct {
	seen map[color.RGBA]Biome
}

func NewResolver() *Resolver {
	return &Resolver{seen: make(map[color.RGBA]Biome)}
}

func (r *Resolver) Resolve(c color.RGBA) Biome {
	c.A = 255
	if b, ok := r.seen[c]; ok {
		return b
	}
	b := Nearest(c)
	r.seen[c] = b
	return b
}

// Unique reports how many distinct colours have been resolved.
func (r *Resolver) Unique() int {
	return len(r.seen)
}
