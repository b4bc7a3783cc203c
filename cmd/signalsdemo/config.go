package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jtarrio/signals/mode"
)

// config is the demo's full set of tunables, settable from flags and
// optionally overridden by a YAML file (spec §6 carries no config
// format of its own; this is purely the cmd/ example's own shape).
type config struct {
	Mode       string  `yaml:"mode"`
	Stereo     bool    `yaml:"stereo"`
	Bandwidth  float64 `yaml:"bandwidth"`
	Upper      bool    `yaml:"upper"`
	CenterFreq int64   `yaml:"center_frequency"`
	Offset     float64 `yaml:"offset"`
	SampleRate int64   `yaml:"sample_rate"`
	WavPath    string  `yaml:"wav_path"`
	Loop       bool    `yaml:"loop"`
	Backend    string  `yaml:"backend"`
	Volume     float32 `yaml:"volume"`
}

// loadYAML overrides cfg's fields with whatever path's YAML document
// sets; fields the document omits keep their flag-derived value.
func (cfg *config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// buildMode turns the config's scheme name and scheme-specific knobs
// into a mode.Mode, falling back to each scheme's registered default
// bandwidth when Bandwidth is zero.
func (cfg *config) buildMode() (mode.Mode, error) {
	switch mode.Scheme(cfg.Mode) {
	case mode.WBFM:
		return mode.NewWBFM(cfg.Stereo), nil
	case mode.NBFM:
		bw := cfg.Bandwidth
		if bw <= 0 {
			bw = mode.GetMode(mode.NBFM).Bandwidth
		}
		return mode.NewNBFM(bw / 2), nil
	case mode.AM:
		bw := cfg.Bandwidth
		if bw <= 0 {
			bw = mode.GetMode(mode.AM).Bandwidth
		}
		return mode.NewAM(bw), nil
	case mode.SSB:
		bw := cfg.Bandwidth
		if bw <= 0 {
			bw = mode.GetMode(mode.SSB).Bandwidth
		}
		return mode.NewSSB(bw, cfg.Upper), nil
	case mode.CW:
		bw := cfg.Bandwidth
		if bw <= 0 {
			bw = mode.GetMode(mode.CW).Bandwidth
		}
		return mode.NewCW(bw), nil
	default:
		return mode.Mode{}, fmt.Errorf("unknown mode %q (want one of %v)", cfg.Mode, mode.GetSchemes())
	}
}
