package config

import "flag"

// Bind attaches the commonly tuned settings to the provided FlagSet.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&s.Seed, "seed", s.Seed, "world seed")
	fs.Float64Var(&s.GlobalScale, "global-scale", s.GlobalScale, "continent scale factor")
	fs.Float64Var(&s.MountainsAmount, "mountains", s.MountainsAmount, "mountain shaping exponent")
	fs.Float64Var(&s.SeaLevelAdjustment, "sea-level", s.SeaLevelAdjustment, "sea level adjustment")
	fs.Float64Var(&s.MaxRidgeHeight, "ridge-height", s.MaxRidgeHeight, "maximum ridge height")
	fs.StringVar(&s.HeightmapPath, "heightmap", s.HeightmapPath, "heightmap image path")
	fs.StringVar(&s.RoughmapPath, "roughmap", s.RoughmapPath, "roughmap image path")
	fs.StringVar(&s.FlatmapPath, "flatmap", s.FlatmapPath, "flatmap image path")
	fs.StringVar(&s.ForestmapPath, "forestmap", s.ForestmapPath, "forestmap image path")
	fs.StringVar(&s.BiomemapPath, "biomemap", s.BiomemapPath, "biome map image path")
	fs.StringVar(&s.SpawnmapPath, "spawnmap", s.SpawnmapPath, "spawn map image path")
	fs.BoolVar(&s.OceanChannels, "ocean-channels", s.OceanChannels, "carve ocean channels")
}

// ApplyFlags copies every flag explicitly set on parsed onto s, so command
// line values win over a loaded document.
func ApplyFlags(s *Settings, parsed *flag.FlagSet) error {
	target := flag.NewFlagSet("settings", flag.ContinueOnError)
	s.Bind(target)
	var err error
	parsed.Visit(func(f *flag.Flag) {
		if err != nil || target.Lookup(f.Name) == nil {
			return
		}
		err = target.Set(f.Name, f.Value.String())
	})
	return err
}
