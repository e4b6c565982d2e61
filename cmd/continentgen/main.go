package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xlab/closer"

	"continentgen/internal/config"
	"continentgen/internal/engine"
	"continentgen/internal/mathx"
	"continentgen/internal/preview"
	"continentgen/internal/profiling"
	"continentgen/internal/terrain"
)

type options struct {
	settingsPath        string
	bake                string
	out                 string
	format              string
	size                int
	workers             int
	sample              string
	schema              bool
	minMountainDistance float64
}

func (o *options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.settingsPath, "settings", "", "settings JSON document")
	fs.StringVar(&o.bake, "bake", "", "bake a preview: height, biome or forest")
	fs.StringVar(&o.out, "out", "", "preview output path")
	fs.StringVar(&o.format, "format", "png", "preview format: png, bmp or tiff")
	fs.IntVar(&o.size, "size", 512, "preview side in pixels")
	fs.IntVar(&o.workers, "workers", 0, "concurrent preview rows (0 = all CPUs)")
	fs.StringVar(&o.sample, "sample", "", "print height, biome and forest factor at world x,y")
	fs.BoolVar(&o.schema, "schema", false, "print the settings JSON schema and exit")
	fs.Float64Var(&o.minMountainDistance, "min-mountain-distance", terrain.DefaultMinMountainDistance, "center mountain exclusion radius")
}

func main() {
	closer.Bind(func() {
		if report := profiling.TopN(8); report != "" {
			log.Printf("profile: %s", report)
		}
	})
	closer.Checked(run, true)
	closer.Close()
}

func run() error {
	opts := &options{}
	opts.Bind(flag.CommandLine)
	settings := config.DefaultSettings()
	settings.Bind(flag.CommandLine)
	flag.Parse()

	if opts.schema {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if opts.settingsPath != "" {
		loaded, err := config.Load(opts.settingsPath)
		if err != nil {
			return err
		}
		if err := config.ApplyFlags(&loaded, flag.CommandLine); err != nil {
			return err
		}
		settings = loaded
	}

	e, err := engine.New(settings, engine.WithMinMountainDistance(opts.minMountainDistance))
	if err != nil {
		return err
	}

	if opts.sample != "" {
		if err := printSample(e, opts.sample); err != nil {
			return err
		}
	}
	if opts.bake != "" {
		return bake(e, opts)
	}
	if opts.sample == "" {
		flag.Usage()
	}
	return nil
}

func printSample(e *engine.Engine, arg string) error {
	xs, ys, ok := strings.Cut(arg, ",")
	if !ok {
		return fmt.Errorf("sample %q: want x,y", arg)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return fmt.Errorf("sample x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return fmt.Errorf("sample y: %w", err)
	}

	nx, ny := float32(mathx.ToNormalized(x)), float32(mathx.ToNormalized(y))
	fmt.Printf("height  %.5f\n", e.Height(float32(x), float32(y)))
	if b, ok := e.BiomeOverride(nx, ny); ok {
		fmt.Printf("biome   %v\n", b)
	} else {
		fmt.Printf("biome   (host)\n")
	}
	fmt.Printf("forest  %.5f\n", e.ForestFactor(nx, ny, 1))
	if p, ok := e.StartPosition(); ok {
		fmt.Printf("start   %.1f,%.1f\n", p.X(), p.Y())
	}
	return nil
}

func bake(e *engine.Engine, opts *options) error {
	kind, err := preview.ParseKind(opts.bake)
	if err != nil {
		return err
	}
	format, err := preview.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.out == "" {
		return errors.New("-bake needs -out")
	}

	img, err := preview.Bake(context.Background(), e, kind, preview.Options{
		Size:       opts.size,
		Workers:    opts.workers,
		ForestBase: 1,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := preview.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.out, err)
	}
	log.Printf("Baked %v %dx%d to %s", kind, opts.size, opts.size, opts.out)
	return nil
}
