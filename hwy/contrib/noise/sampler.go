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

	"github.com/ajroetker/go-fastnoise/hwy"
)

// Sampler computes one batch of noise samples.
//
// coords holds one vector per axis with unscaled coordinates; freq is the
// frequency broadcast to every lane; mask is the permutation mask
// (perms.HighestStoredValue()) broadcast to every lane. The result has one
// sample per input lane.
type Sampler[F hwy.Floats] func(coords []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F]

// NewSampler returns the sampler for the given dimensionality and noise type
// working on registers described by d.
func NewSampler[F hwy.Floats](d hwy.Tag, dims int, kind NoiseType) (Sampler[F], error) {
	if dims < 1 || dims > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimensions, dims)
	}
	if hwy.LanesOf[F](d) == 0 {
		return nil, fmt.Errorf("noise: register %s holds no lanes", d.Name())
	}

	k := newKernel[F](d, dims)
	samplers := map[NoiseType][4]Sampler[F]{
		Value:       {1: k.value1D, 2: k.value2D, 3: k.value3D},
		ValueSmooth: {1: k.smooth1D, 2: k.smooth2D, 3: k.smooth3D},
		Perlin:      {1: k.perlin1D, 2: k.perlin2D, 3: k.perlin3D},
	}
	byDims, ok := samplers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNoiseType, int(kind))
	}
	return byDims[dims], nil
}

// kernel holds the per-width constants shared by all samplers.
type kernel[F hwy.Floats] struct {
	one    hwy.Vec[int32]
	unit   hwy.Vec[F]
	smooth smoother[F]
	grads  *GradientTable[F]
}

func newKernel[F hwy.Floats](d hwy.Tag, dims int) *kernel[F] {
	lanes := hwy.LanesOf[F](d)
	return &kernel[F]{
		// int32 lattice vectors carry exactly as many lanes as the float registers.
		one:    hwy.FromSlice(repeat(int32(1), lanes)),
		unit:   hwy.Set(d, F(1)),
		smooth: newSmoother[F](d),
		grads:  Gradients[F](dims),
	}
}

func repeat[T any](v T, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// cell returns the masked lattice cell of every lane after scaling by freq.
func cell[F hwy.Floats](c, freq hwy.Vec[F], mask hwy.Vec[int32]) hwy.Vec[int32] {
	i, _ := hwy.FloorToInt32(hwy.Mul(c, freq))
	return hwy.And(i, mask)
}

// axis is the lattice decomposition of one coordinate axis.
type axis[F hwy.Floats] struct {
	lo, hi hwy.Vec[int32] // masked cell corners
	frac   hwy.Vec[F]     // position inside the cell, [0, 1)
	weight hwy.Vec[F]     // smoothed frac
}

func (k *kernel[F]) axis(c, freq hwy.Vec[F], mask hwy.Vec[int32]) axis[F] {
	scaled := hwy.Mul(c, freq)
	i, floored := hwy.FloorToInt32(scaled)
	frac := hwy.Sub(scaled, floored)
	return axis[F]{
		lo:     hwy.And(i, mask),
		hi:     hwy.And(hwy.Add(i, k.one), mask),
		frac:   frac,
		weight: k.smooth.apply(frac),
	}
}

// normalize converts hashed values to [0, 1] by dividing by the mask.
func normalize[F hwy.Floats](v hwy.Vec[F], mask hwy.Vec[int32]) hwy.Vec[F] {
	return hwy.Div(v, hwy.ConvertFromInt32[F](mask))
}

func toFloat[F hwy.Floats](v hwy.Vec[int32]) hwy.Vec[F] {
	return hwy.ConvertFromInt32[F](v)
}
