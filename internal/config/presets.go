package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/pattern"
)

// Preset is one curated visual mode.
type Preset struct {
	Params  dynamo.Params
	Name    string
	Hue     float64
	Pattern pattern.Kind
}

// Presets is the curated table, cycled in order.
var Presets = []Preset{
	{dynamo.Params{A: 1.7, B: 1.7, C: 0.6, D: 1.2}, "SPECTRAL MEMORY", 0.6, pattern.Standard},
	{dynamo.Params{A: -1.7, B: 1.8, C: -0.9, D: -0.4}, "NOVA REMNANT", 0.8, pattern.Standard},
	{dynamo.Params{A: -1.4, B: 1.6, C: 1.0, D: 0.7}, "CRYSTALLINE DREAM", 0.2, pattern.Standard},
	{dynamo.Params{A: 1.1, B: -1.0, C: 1.0, D: 1.5}, "VOID WHISPER", 0.05, pattern.Standard},
	{dynamo.Params{A: 2.01, B: -2.53, C: 1.61, D: -0.33}, "SYNAPTIC PULSE", 0.9, pattern.Standard},
	{dynamo.Params{A: 1.42, B: -2.3, C: -1.0, D: -0.07}, "NEURAL COSMOS", 0.75, pattern.Standard},
	{dynamo.Params{A: 1.4, B: 1.56, C: 1.4, D: -1.87}, "ASTRAL FILAMENT", 0.62, pattern.Standard},
	{dynamo.Params{A: -1.3, B: 1.21, C: -1.84, D: -1.74}, "MIDNIGHT ORBIT", 0.1, pattern.Standard},
	{dynamo.Params{A: 1.34, B: -1.35, C: 1.1, D: 0.2}, "SOLAR THOUGHT", 0.7, pattern.Standard},
	{dynamo.Params{A: -1.8, B: 1.7, C: -0.54, D: -1.95}, "COSMIC STAR", 0.15, pattern.Star},
	{dynamo.Params{A: -1.4, B: 1.1, C: 1.18, D: 1.0}, "AURORA BOREALIS", 0.3, pattern.Aurora},
	{dynamo.Params{A: 1.5, B: -1.8, C: 1.6, D: 0.9}, "MANDELBROT ECHO", 0.8, pattern.Fractal},
	{dynamo.Params{A: -1.24, B: -1.25, C: -1.82, D: 1.16}, "QUANTUM FLUX", 0.55, pattern.Quantum},
	{dynamo.Params{A: 1.2, B: 2.2, C: -1.4, D: 0.9}, "LORENZ BUTTERFLY", 0.35, pattern.Lorenz},
	{dynamo.Params{A: 1.4, B: 1.1, C: 1.0, D: 1.8}, "RÖSSLER SPIRAL", 0.95, pattern.Rossler},
	{dynamo.Params{A: 2.1, B: -2.3, C: 1.9, D: -1.1}, "HENON ORBIT", 0.45, pattern.Henon},
	{dynamo.Params{A: -0.97, B: 2.09, C: 1.18, D: 1.32}, "STRANGE BASIN", 0.02, pattern.Ikeda},
}

// PresetSpec is the file form of a preset. Pointer fields distinguish a
// missing coefficient from an explicit zero.
type PresetSpec struct {
	A       *float64 `yaml:"a"`
	B       *float64 `yaml:"b"`
	C       *float64 `yaml:"c"`
	D       *float64 `yaml:"d"`
	Name    string   `yaml:"name"`
	Hue     *float64 `yaml:"hue"`
	Pattern string   `yaml:"pattern"`
}

// Spec converts a preset back to its file form.
func (p Preset) Spec() PresetSpec {
	a, b, c, d, h := p.Params.A, p.Params.B, p.Params.C, p.Params.D, p.Hue
	return PresetSpec{A: &a, B: &b, C: &c, D: &d, Name: p.Name, Hue: &h, Pattern: p.Pattern.String()}
}

// BuildPresets validates file entries. Any missing or malformed field is
// reported as a *dynamo.PresetError.
func BuildPresets(specs []PresetSpec) ([]Preset, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty preset table", dynamo.ErrInvalidPreset)
	}
	out := make([]Preset, len(specs))
	for i, s := range specs {
		p, err := s.build()
		if err != nil {
			err.Index = i
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func (s PresetSpec) build() (Preset, *dynamo.PresetError) {
	missing := func(field string) *dynamo.PresetError {
		return &dynamo.PresetError{Field: field, Wrapped: fmt.Errorf("%w: missing", dynamo.ErrInvalidPreset)}
	}
	fields := []struct {
		name string
		v    *float64
	}{{"a", s.A}, {"b", s.B}, {"c", s.C}, {"d", s.D}, {"hue", s.Hue}}
	for _, f := range fields {
		if f.v == nil {
			return Preset{}, missing(f.name)
		}
	}
	if strings.TrimSpace(s.Name) == "" {
		return Preset{}, missing("name")
	}
	if s.Pattern == "" {
		return Preset{}, missing("pattern")
	}

	kind, err := pattern.ParseKind(s.Pattern)
	if err != nil {
		return Preset{}, &dynamo.PresetError{Field: "pattern", Wrapped: fmt.Errorf("%w: %w", dynamo.ErrInvalidPreset, err)}
	}

	p := Preset{
		Params:  dynamo.Params{A: *s.A, B: *s.B, C: *s.C, D: *s.D},
		Name:    s.Name,
		Hue:     *s.Hue,
		Pattern: kind,
	}
	if !p.Params.IsFinite() {
		return Preset{}, &dynamo.PresetError{Field: "a..d", Wrapped: fmt.Errorf("%w: %w", dynamo.ErrInvalidPreset, dynamo.ErrNonFinite)}
	}
	if p.Hue < 0 || p.Hue >= 1 {
		return Preset{}, &dynamo.PresetError{Field: "hue", Wrapped: fmt.Errorf("%w: %.3f outside [0,1)", dynamo.ErrInvalidPreset, p.Hue)}
	}
	return p, nil
}

// LoadPresets reads a YAML list of presets.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var specs []PresetSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return BuildPresets(specs)
}

// FindPreset resolves a preset by case-insensitive name.
func FindPreset(table []Preset, name string) (int, bool) {
	for i, p := range table {
		if strings.EqualFold(p.Name, name) {
			return i, true
		}
	}
	return -1, false
}

func ListPresets(table []Preset) []string {
	names := make([]string, len(table))
	for i, p := range table {
		names[i] = p.Name
	}
	return names
}
