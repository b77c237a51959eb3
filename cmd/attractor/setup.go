package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
)

// session is everything a command needs after flags and files are
// merged.
type session struct {
	cfg     *config.Config
	presets []config.Preset
	rng     *rand.Rand
}

// loadSession merges defaults, the config file and flags, in that order,
// and validates the result before anything is drawn.
func loadSession(cmd *cobra.Command) (*session, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("fade") {
		cfg.FadeOpacity = fade
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if noVignette {
		cfg.Vignette = false
	}
	if greyscale {
		cfg.Color = false
	}
	if flags.Changed("theme") {
		cfg.Live.Theme = theme
	}
	if flags.Changed("braille") {
		cfg.Live.Braille = braille
	}
	if flags.Changed("supersample") {
		cfg.Live.Supersample = supersample
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var table []config.Preset
	var err error
	if presetsFile != "" {
		table, err = config.LoadPresets(presetsFile)
		if err == nil && (cfg.Preset < 0 || cfg.Preset >= len(table)) {
			cfg.Preset = 0
		}
	} else {
		table, err = cfg.ResolvePresets()
	}
	if err != nil {
		return nil, err
	}

	if presetName != "" {
		idx, err := resolvePreset(table, presetName)
		if err != nil {
			return nil, err
		}
		cfg.Preset = idx
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("session ready", "preset", table[cfg.Preset].Name, "points", cfg.Points, "seed", cfg.Seed)

	return &session{
		cfg:     cfg,
		presets: table,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

func resolvePreset(table []config.Preset, name string) (int, error) {
	if idx, ok := config.FindPreset(table, name); ok {
		return idx, nil
	}
	if idx, err := strconv.Atoi(name); err == nil && idx >= 0 && idx < len(table) {
		return idx, nil
	}
	return 0, fmt.Errorf("%w: unknown preset %q (available: %v)", dynamo.ErrInvalidConfig, name, config.ListPresets(table))
}
