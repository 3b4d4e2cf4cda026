// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-fastnoise/hwy"
	"github.com/ajroetker/go-fastnoise/hwy/contrib/noise"
)

// Config is everything noisegen needs for one table.
type Config struct {
	Dims      int             `yaml:"dims"`
	Kind      noise.NoiseType `yaml:"kind"`
	Major     int             `yaml:"major"`
	Precision int             `yaml:"precision"`

	// Width is the register width in bits; 0 selects the runtime width.
	Width int `yaml:"width"`

	Slice    int           `yaml:"slice"`
	Out      string        `yaml:"out"`
	Workers  int           `yaml:"workers"`
	CacheDir string        `yaml:"cache_dir"`
	Verbose  bool          `yaml:"verbose"`
	Noise    noise.Options `yaml:"noise"`
}

func defaultConfig() *Config {
	return &Config{
		Dims:      2,
		Kind:      noise.Perlin,
		Precision: 32,
		Out:       "noise.png",
		Workers:   1,
		Noise:     noise.DefaultOptions(2),
	}
}

// loadConfig resolves the configuration: flag defaults (which carry the
// FASTNOISE_* environment), then the --config file, then flags set
// explicitly on the command line.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	cfg := defaultConfig()
	if err := cfg.applyFlags(flags, false); err != nil {
		return nil, err
	}

	if path, _ := flags.GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := cfg.applyFlags(flags, true); err != nil {
			return nil, err
		}
	}

	cfg.fitAxes()
	return cfg, cfg.validate()
}

// applyFlags copies flag values into cfg. With onlyChanged, flags left at
// their defaults are skipped.
func (cfg *Config) applyFlags(flags *pflag.FlagSet, onlyChanged bool) error {
	use := func(name string) bool {
		return flags.Lookup(name) != nil && (!onlyChanged || flags.Changed(name))
	}

	if use("dims") {
		cfg.Dims, _ = flags.GetInt("dims")
	}
	if use("kind") {
		s, _ := flags.GetString("kind")
		kind, err := noise.ParseNoiseType(s)
		if err != nil {
			return err
		}
		cfg.Kind = kind
	}
	if use("major") {
		cfg.Major, _ = flags.GetInt("major")
	}
	if use("precision") {
		cfg.Precision, _ = flags.GetInt("precision")
	}
	if use("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if use("slice") {
		cfg.Slice, _ = flags.GetInt("slice")
	}
	if use("out") {
		cfg.Out, _ = flags.GetString("out")
	}
	if use("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if use("cache-dir") {
		cfg.CacheDir, _ = flags.GetString("cache-dir")
	}
	if use("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	opts := &cfg.Noise
	if use("res") {
		opts.Resolution, _ = flags.GetIntSlice("res")
	}
	if use("start") {
		opts.Start, _ = flags.GetFloat64Slice("start")
	}
	if use("step") {
		opts.EndOrStep, _ = flags.GetFloat64Slice("step")
		opts.StepMode = noise.StepIsIncrement
	}
	// --end wins over --step when both are given explicitly.
	if flags.Changed("end") {
		opts.EndOrStep, _ = flags.GetFloat64Slice("end")
		opts.StepMode = noise.StepIsEnd
	}
	if use("freq") {
		opts.Frequency, _ = flags.GetFloat64("freq")
	}
	if use("octaves") {
		opts.Fractal.Octaves, _ = flags.GetInt("octaves")
		opts.UseFractal = opts.Fractal.Octaves > 1
	}
	if use("lacunarity") {
		opts.Fractal.Lacunarity, _ = flags.GetFloat64("lacunarity")
	}
	if use("gain") {
		opts.Fractal.Gain, _ = flags.GetFloat64("gain")
	}
	if use("seed") {
		opts.Permutations.Seed, _ = flags.GetInt64("seed")
	}
	if use("perm-size") {
		opts.Permutations.Size, _ = flags.GetInt("perm-size")
	}
	return nil
}

// fitAxes stretches or truncates the per-axis option lists to Dims. A list
// shorter than Dims repeats its last value.
func (cfg *Config) fitAxes() {
	def := noise.DefaultOptions(max(cfg.Dims, 1))
	cfg.Noise.Resolution = fit(cfg.Noise.Resolution, cfg.Dims, def.Resolution[0])
	cfg.Noise.Start = fit(cfg.Noise.Start, cfg.Dims, def.Start[0])
	cfg.Noise.EndOrStep = fit(cfg.Noise.EndOrStep, cfg.Dims, def.EndOrStep[0])
}

func fit[T any](s []T, n int, def T) []T {
	if n <= 0 {
		return s
	}
	out := make([]T, n)
	for i := range out {
		switch {
		case i < len(s):
			out[i] = s[i]
		case len(s) > 0:
			out[i] = s[len(s)-1]
		default:
			out[i] = def
		}
	}
	return out
}

func (cfg *Config) validate() error {
	if cfg.Dims < 1 || cfg.Dims > 3 {
		return fmt.Errorf("%w: got %d", noise.ErrInvalidDimensions, cfg.Dims)
	}
	if cfg.Major < 0 || cfg.Major >= cfg.Dims {
		return fmt.Errorf("%w: major axis %d for %d dimensions", noise.ErrInvalidMajorAxis, cfg.Major, cfg.Dims)
	}
	if cfg.Precision != 32 && cfg.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64, got %d", cfg.Precision)
	}
	if _, err := hwy.TagForBits(cfg.Width); err != nil {
		return err
	}
	if cfg.Dims == 3 && (cfg.Slice < 0 || cfg.Slice >= cfg.Noise.Resolution[2]) {
		return fmt.Errorf("slice %d outside 0..%d", cfg.Slice, cfg.Noise.Resolution[2]-1)
	}
	return cfg.Noise.Validate(cfg.Dims)
}
