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

package noise

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// StepMode selects how Options.EndOrStep is interpreted.
type StepMode int

const (
	// StepIsIncrement treats EndOrStep as the coordinate increment per index.
	StepIsIncrement StepMode = iota

	// StepIsEnd treats EndOrStep as an exclusive end coordinate, so that
	// step = (end - start) / resolution and adjacent tiles line up.
	StepIsEnd
)

// MarshalText implements encoding.TextMarshaler ("step" or "end").
func (m StepMode) MarshalText() ([]byte, error) {
	switch m {
	case StepIsIncrement:
		return []byte("step"), nil
	case StepIsEnd:
		return []byte("end"), nil
	}
	return nil, fmt.Errorf("noise: unknown step mode %d", int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *StepMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "step", "increment":
		*m = StepIsIncrement
	case "end":
		*m = StepIsEnd
	default:
		return fmt.Errorf("noise: unknown step mode %q", text)
	}
	return nil
}

// Options describes one table generation.
type Options struct {
	// Resolution is the number of samples per axis.
	Resolution []int `yaml:"resolution"`

	// Start is the coordinate of index 0 on each axis.
	Start []float64 `yaml:"start"`

	// EndOrStep is the per-axis increment or end bound, see StepMode.
	EndOrStep []float64 `yaml:"end_or_step"`
	StepMode  StepMode  `yaml:"step_mode"`

	// Frequency scales coordinates before hashing.
	Frequency float64 `yaml:"frequency"`

	UseFractal   bool            `yaml:"use_fractal"`
	Permutations PermutationInfo `yaml:"permutations"`
	Fractal      FractalInfo     `yaml:"fractal"`
}

// DefaultOptions returns options for a 64^dims table starting at the origin
// with unit steps, frequency 1 and the default fractal settings (disabled).
func DefaultOptions(dims int) Options {
	return Options{
		Resolution: repeat(64, dims),
		Start:      make([]float64, dims),
		EndOrStep:  repeat(1.0, dims),
		StepMode:   StepIsIncrement,
		Frequency:  1,
		Fractal:    DefaultFractalInfo(),
	}
}

// MakeStep returns the coordinate increment per index on each axis.
func (o Options) MakeStep() []float64 {
	if o.StepMode == StepIsIncrement {
		return append([]float64(nil), o.EndOrStep...)
	}
	return lo.Map(o.EndOrStep, func(end float64, axis int) float64 {
		return (end - o.Start[axis]) / float64(o.Resolution[axis])
	})
}

// MakePermutations builds the permutation table described by o.Permutations.
func (o Options) MakePermutations() (*Permutations, error) {
	return NewPermutations(o.Permutations)
}

// NumSamples returns the product of the resolution.
func (o Options) NumSamples() int {
	return lo.Reduce(o.Resolution, func(n, r, _ int) int { return n * r }, 1)
}

// Validate checks o against a table of dims dimensions.
func (o Options) Validate(dims int) error {
	for name, n := range map[string]int{
		"resolution":  len(o.Resolution),
		"start":       len(o.Start),
		"end_or_step": len(o.EndOrStep),
	} {
		if n != dims {
			return fmt.Errorf("%w: %s has %d values, table has %d dimensions", ErrDimensionMismatch, name, n, dims)
		}
	}
	if lo.ContainsBy(o.Resolution, func(r int) bool { return r <= 0 }) {
		return fmt.Errorf("%w: %v", ErrInvalidResolution, o.Resolution)
	}
	return nil
}
