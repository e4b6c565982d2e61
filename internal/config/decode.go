package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported settings version")
	ErrInvalid            = errors.New("invalid settings")
)

// Load reads and decodes the settings document at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a settings document of any supported version. Fields
// missing from the document keep their defaults. The decoded Version is the
// format the document was written in; it still selects the height pipeline.
func Decode(data []byte) (Settings, error) {
	var head struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Settings{}, fmt.Errorf("parse version: %w", err)
	}

	var (
		s   Settings
		err error
	)
	switch head.Version {
	case 1:
		s, err = decodeV1(data)
	case 2:
		s, err = decodeV2(data)
	case 3:
		s, err = decodeV3(data)
	default:
		return Settings{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, head.Version)
	}
	if err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func decodeInto(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// decodeV1 reads the original format. It has no flatmap and always applies
// edge dropoff and center mountain suppression.
func decodeV1(data []byte) (Settings, error) {
	s, err := decodeV2(data)
	if err != nil {
		return Settings{}, err
	}
	s.FlatmapPath = ""
	s.FlatmapBlend = 0
	s.UseRoughInvertedAsFlat = false
	s.DisableMapEdgeDropoff = false
	s.MountainsAllowedAtCenter = false
	return s, nil
}

// decodeV2 adds the flatmap and the edge/center flags. Noise stacks and
// start positions arrived in version 3.
func decodeV2(data []byte) (Settings, error) {
	s, err := decodeV3(data)
	if err != nil {
		return Settings{}, err
	}
	s.NoiseStack = nil
	s.StartPosition = nil
	return s, nil
}

func decodeV3(data []byte) (Settings, error) {
	return decodeInto(data)
}

// Validate checks ranges the compositor cannot tolerate.
func (s Settings) Validate() error {
	if !(s.GlobalScale > 0) || math.IsInf(s.GlobalScale, 0) {
		return fmt.Errorf("%w: globalScale must be positive, got %v", ErrInvalid, s.GlobalScale)
	}
	if s.RidgeScale < 0 {
		return fmt.Errorf("%w: ridgeScale must not be negative, got %v", ErrInvalid, s.RidgeScale)
	}
	for name, v := range map[string]float64{
		"heightmapBlend": s.HeightmapBlend,
		"heightmapMask":  s.HeightmapMask,
		"flatmapBlend":   s.FlatmapBlend,
		"roughmapBlend":  s.RoughmapBlend,
	} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0,1], got %v", ErrInvalid, name, v)
		}
	}
	return nil
}

// Encode writes s as indented JSON.
func Encode(s Settings) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes s to path.
func Save(path string, s Settings) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
