// Package democfg loads the optional YAML config file that overrides
// the chip demo's clock rate, sample rate and output path. Channel
// gains are decoded into Config.Gains, but the chip demo does not read
// them: its gains are fixed by internal/chip's NewDemoChip. It follows
// the repository's established pattern of small YAML-backed config
// structs (see the deviceid vendor mapping in the pack's reference
// direwolf port) rather than flags for anything more than a couple of
// fields.
package democfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults matches the original demo harness's hard-coded constants:
// a console-APU-speed clock feeding a 44.1kHz output, with gains for
// the two square channels, the triangle channel and the noise channel
// in that order.
var Defaults = Config{
	ClockRate:  1789772,
	SampleRate: 44100,
	Gains:      [4]int{26, 26, 30, 18},
	OutputPath: "chip.wav",
}

// Config is the YAML-decoded shape of a demo config file. Zero fields
// fall back to Defaults.
type Config struct {
	ClockRate  uint64 `yaml:"clock_rate"`
	SampleRate uint64 `yaml:"sample_rate"`
	Gains      [4]int `yaml:"gains"`
	OutputPath string `yaml:"output_path"`
}

// Load reads and decodes path, filling zero fields from Defaults. An
// empty path returns Defaults unmodified.
func Load(path string) (Config, error) {
	cfg := Defaults
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("democfg: %w", err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Config{}, fmt.Errorf("democfg: parse %s: %w", path, err)
	}

	if overrides.ClockRate != 0 {
		cfg.ClockRate = overrides.ClockRate
	}
	if overrides.SampleRate != 0 {
		cfg.SampleRate = overrides.SampleRate
	}
	if overrides.Gains != [4]int{} {
		cfg.Gains = overrides.Gains
	}
	if overrides.OutputPath != "" {
		cfg.OutputPath = overrides.OutputPath
	}

	return cfg, nil
}
