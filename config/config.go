// Package config loads tuning for the camera plugin from YAML and can
// watch the file for live reloads while the game runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hollowmoor/stagecam/ecs/component"
)

// Config is the plugin tuning surface. Missing fields keep their
// defaults, so a config file only needs the values it overrides.
type Config struct {
	Shake ShakeConfig `yaml:"shake"`
	View  ViewConfig  `yaml:"view"`
}

// ShakeConfig is the global fallback for entities without their own
// ShakeSettings.
type ShakeConfig struct {
	Amplitude      float64 `yaml:"amplitude"`
	TraumaPower    float64 `yaml:"trauma_power"`
	DecayPerSecond float64 `yaml:"decay_per_second"`
	Frequency      float64 `yaml:"frequency"`
	Octaves        int     `yaml:"octaves"`
}

// Settings converts the config block into the component form.
func (c ShakeConfig) Settings() component.ShakeSettings {
	return component.ShakeSettings{
		Amplitude:      c.Amplitude,
		TraumaPower:    c.TraumaPower,
		DecayPerSecond: c.DecayPerSecond,
		Frequency:      c.Frequency,
		Octaves:        c.Octaves,
	}
}

// ViewConfig tunes the host-facing view transform.
type ViewConfig struct {
	Zoom        float64 `yaml:"zoom"`
	PixelSnap   bool    `yaml:"pixel_snap"`
	WorldWidth  float64 `yaml:"world_width"`  // 0 = unbounded
	WorldHeight float64 `yaml:"world_height"` // 0 = unbounded
}

// Default returns the built-in tuning.
func Default() Config {
	d := component.DefaultShakeSettings
	return Config{
		Shake: ShakeConfig{
			Amplitude:      d.Amplitude,
			TraumaPower:    d.TraumaPower,
			DecayPerSecond: d.DecayPerSecond,
			Frequency:      d.Frequency,
			Octaves:        d.Octaves,
		},
		View: ViewConfig{
			Zoom:      1,
			PixelSnap: true,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the tick loop is not built to recover from.
func (c Config) Validate() error {
	if c.Shake.Amplitude < 0 {
		return fmt.Errorf("shake.amplitude must be >= 0, got %v", c.Shake.Amplitude)
	}
	if c.Shake.TraumaPower < 0 {
		return fmt.Errorf("shake.trauma_power must be >= 0, got %v", c.Shake.TraumaPower)
	}
	if c.Shake.DecayPerSecond < 0 {
		return fmt.Errorf("shake.decay_per_second must be >= 0, got %v", c.Shake.DecayPerSecond)
	}
	if c.Shake.Frequency < 0 {
		return fmt.Errorf("shake.frequency must be >= 0, got %v", c.Shake.Frequency)
	}
	if c.Shake.Octaves < 0 {
		return fmt.Errorf("shake.octaves must be >= 0, got %v", c.Shake.Octaves)
	}
	if c.View.Zoom <= 0 {
		return fmt.Errorf("view.zoom must be > 0, got %v", c.View.Zoom)
	}
	if c.View.WorldWidth < 0 || c.View.WorldHeight < 0 {
		return fmt.Errorf("view.world bounds must be >= 0")
	}
	return nil
}
