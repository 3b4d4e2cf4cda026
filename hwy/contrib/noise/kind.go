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
	"errors"
	"fmt"
	"strings"
)

// NoiseType selects the lattice noise algorithm.
type NoiseType int

const (
	// Value samples the hashed value of the containing lattice cell.
	Value NoiseType = iota

	// ValueSmooth interpolates the hashed values of the cell corners with
	// quintic-smoothed weights.
	ValueSmooth

	// Perlin interpolates gradient dot products at the cell corners.
	Perlin
)

// Errors returned by table construction and generation.
var (
	ErrInvalidDimensions   = errors.New("noise: dimensions must be 1, 2 or 3")
	ErrInvalidMajorAxis    = errors.New("noise: major axis out of range")
	ErrInvalidNoiseType    = errors.New("noise: unknown noise type")
	ErrInvalidResolution   = errors.New("noise: resolution has a zero or negative axis")
	ErrDimensionMismatch   = errors.New("noise: option length does not match table dimensions")
	ErrInvalidPermutations = errors.New("noise: invalid permutation table")
)

var noiseTypeNames = map[NoiseType]string{
	Value:       "value",
	ValueSmooth: "value_smooth",
	Perlin:      "perlin",
}

// String returns the lower-case name of the noise type.
func (k NoiseType) String() string {
	if name, ok := noiseTypeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NoiseType(%d)", int(k))
}

// ParseNoiseType parses "value", "value_smooth" (or "smooth") and "perlin".
func ParseNoiseType(s string) (NoiseType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value":
		return Value, nil
	case "value_smooth", "value-smooth", "smooth":
		return ValueSmooth, nil
	case "perlin":
		return Perlin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNoiseType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k NoiseType) MarshalText() ([]byte, error) {
	if _, ok := noiseTypeNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNoiseType, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *NoiseType) UnmarshalText(text []byte) error {
	parsed, err := ParseNoiseType(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
