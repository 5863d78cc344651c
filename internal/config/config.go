// Package config loads the tunable knobs that parameterize a run of the
// detection pipeline from a YAML file, falling back to the reference
// defaults for anything the file omits.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the pipeline's components accept.
type Config struct {
	// Noise is the shortest substring length winnowing guarantees NOT to
	// report.
	Noise int `yaml:"noise"`
	// Guarantee is the shortest substring length winnowing guarantees TO
	// report at least once.
	Guarantee int `yaml:"guarantee"`
	// MinimumMatch is the tiler's shortest reportable match.
	MinimumMatch int `yaml:"minimum_match"`
	// InitialSearchLength is the tiler's starting search length.
	InitialSearchLength int `yaml:"initial_search_length"`
	// CommonCutoff is the largest bucket size the pair-scorer will still
	// count; larger buckets are suppressed as incidentally common.
	CommonCutoff int `yaml:"common_cutoff"`
	// NumberOfReport caps how many ranked pairs the pair-scorer returns.
	NumberOfReport int `yaml:"number_of_report"`
	// Threshold is the matched/total token ratio above which a rendered
	// pair is considered worth a human's attention.
	Threshold float64 `yaml:"threshold"`
}

// Default returns the reference implementation's documented tunable
// defaults.
func Default() Config {
	return Config{
		Noise:               40,
		Guarantee:           80,
		MinimumMatch:        40,
		InitialSearchLength: 20,
		CommonCutoff:        10,
		NumberOfReport:      40,
		Threshold:           0.6,
	}
}

// Load reads a YAML config file at path and overlays it on top of
// Default(): every field the file sets to a non-zero value (negative
// values included) replaces the default, and a field that is absent or
// zero keeps the default, so Load cannot set a tunable to zero (e.g.
// threshold 0.0).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	overlay := Config{}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyOverlay(&cfg, overlay)
	return cfg, nil
}

func applyOverlay(cfg *Config, overlay Config) {
	if overlay.Noise != 0 {
		cfg.Noise = overlay.Noise
	}
	if overlay.Guarantee != 0 {
		cfg.Guarantee = overlay.Guarantee
	}
	if overlay.MinimumMatch != 0 {
		cfg.MinimumMatch = overlay.MinimumMatch
	}
	if overlay.InitialSearchLength != 0 {
		cfg.InitialSearchLength = overlay.InitialSearchLength
	}
	if overlay.CommonCutoff != 0 {
		cfg.CommonCutoff = overlay.CommonCutoff
	}
	if overlay.NumberOfReport != 0 {
		cfg.NumberOfReport = overlay.NumberOfReport
	}
	if overlay.Threshold != 0 {
		cfg.Threshold = overlay.Threshold
	}
}
