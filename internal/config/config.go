package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/attractor/internal/dynamo"
)

const (
	DefaultWidth        = 960
	DefaultHeight       = 600
	DefaultPoints       = 2000
	DefaultFadeOpacity  = 0.02
	DefaultPhaseRate    = 0.7
	DefaultNameDuration = 3.0
	DefaultFPS          = 30
	DefaultSupersample  = 3
)

type Config struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	Points       int          `yaml:"points"`
	FadeOpacity  float64      `yaml:"fade_opacity"`
	Vignette     bool         `yaml:"vignette"`
	PhaseRate    float64      `yaml:"phase_rate"`
	WarmUp       int          `yaml:"warm_up"`
	NameDuration float64      `yaml:"name_duration"`
	Color        bool         `yaml:"color"`
	Preset       int          `yaml:"preset"`
	FPS          int          `yaml:"fps"`
	Seed         int64        `yaml:"seed"`
	Live         LiveConfig   `yaml:"live"`
	Presets      []PresetSpec `yaml:"presets,omitempty"`
}

type LiveConfig struct {
	Supersample int    `yaml:"supersample"`
	Braille     bool   `yaml:"braille"`
	Theme       string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Points:       DefaultPoints,
		FadeOpacity:  DefaultFadeOpacity,
		Vignette:     true,
		PhaseRate:    DefaultPhaseRate,
		WarmUp:       1000,
		NameDuration: DefaultNameDuration,
		Color:        true,
		FPS:          DefaultFPS,
		Live: LiveConfig{
			Supersample: DefaultSupersample,
			Theme:       "cyberpunk",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", dynamo.ErrInvalidConfig, c.Width, c.Height)
	case c.Points <= 0:
		return fmt.Errorf("%w: points must be positive, got %d", dynamo.ErrInvalidConfig, c.Points)
	case c.FadeOpacity <= 0 || c.FadeOpacity > 1:
		return fmt.Errorf("%w: fade_opacity %.3f outside (0,1]", dynamo.ErrInvalidConfig, c.FadeOpacity)
	case c.PhaseRate < 0:
		return fmt.Errorf("%w: phase_rate must not be negative", dynamo.ErrInvalidConfig)
	case c.WarmUp < 0:
		return fmt.Errorf("%w: warm_up must not be negative", dynamo.ErrInvalidConfig)
	case c.NameDuration < 0:
		return fmt.Errorf("%w: name_duration must not be negative", dynamo.ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", dynamo.ErrInvalidConfig, c.FPS)
	case c.Live.Supersample < 1:
		return fmt.Errorf("%w: live.supersample must be at least 1", dynamo.ErrInvalidConfig)
	}
	return nil
}

// FrameInterval is the fixed wall-time step for offline rendering.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ResolvePresets returns the custom table when one is configured, the
// curated table otherwise, and checks the start index against it.
func (c *Config) ResolvePresets() ([]Preset, error) {
	table := Presets
	if len(c.Presets) > 0 {
		var err error
		if table, err = BuildPresets(c.Presets); err != nil {
			return nil, err
		}
	}
	if c.Preset < 0 || c.Preset >= len(table) {
		return nil, fmt.Errorf("%w: preset index %d outside [0,%d)", dynamo.ErrInvalidConfig, c.Preset, len(table))
	}
	return table, nil
}
