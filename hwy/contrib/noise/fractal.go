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

import "github.com/ajroetker/go-fastnoise/hwy"

// FractalInfo configures fractal (octave) composition.
type FractalInfo struct {
	// Octaves is the number of layers; values <= 1 disable composition.
	Octaves int `yaml:"octaves"`

	// Lacunarity multiplies the frequency from one octave to the next.
	Lacunarity float64 `yaml:"lacunarity"`

	// Gain multiplies the amplitude from one octave to the next, usually in (0, 1).
	Gain float64 `yaml:"gain"`
}

// DefaultFractalInfo returns 4 octaves with lacunarity 2 and gain 0.5.
func DefaultFractalInfo() FractalInfo {
	return FractalInfo{Octaves: 4, Lacunarity: 2, Gain: 0.5}
}

// wrapper produces one batch of final samples from one batch of coordinates.
type wrapper[F hwy.Floats] interface {
	sample(coords []hwy.Vec[F]) hwy.Vec[F]
}

// singleOctave evaluates the sampler once at the starting frequency.
type singleOctave[F hwy.Floats] struct {
	sampler Sampler[F]
	freq    hwy.Vec[F]
	mask    hwy.Vec[int32]
	perms   *Permutations
}

func (w *singleOctave[F]) sample(coords []hwy.Vec[F]) hwy.Vec[F] {
	return w.sampler(coords, w.freq, w.mask, w.perms)
}

// fractalOctaves sums octaves of decreasing amplitude and increasing
// frequency, divided by the sum of the amplitudes.
type fractalOctaves[F hwy.Floats] struct {
	singleOctave[F]
	d          hwy.Tag
	octaves    int
	lacunarity hwy.Vec[F]
	gain       F
}

func (w *fractalOctaves[F]) sample(coords []hwy.Vec[F]) hwy.Vec[F] {
	result := w.sampler(coords, w.freq, w.mask, w.perms)
	if w.octaves <= 1 {
		return result
	}

	freq := w.freq
	amplitude := F(1)
	span := F(1)
	for range w.octaves - 1 {
		freq = hwy.Mul(freq, w.lacunarity)
		amplitude *= w.gain
		span += amplitude
		octave := w.sampler(coords, freq, w.mask, w.perms)
		result = hwy.MulAdd(hwy.Set(w.d, amplitude), octave, result)
	}
	return hwy.Div(result, hwy.Set(w.d, span))
}

// newWrapper builds the fractal or single-octave wrapper around sampler.
func newWrapper[F hwy.Floats](d hwy.Tag, sampler Sampler[F], freq float64, useFractal bool, info FractalInfo, perms *Permutations) wrapper[F] {
	single := singleOctave[F]{
		sampler: sampler,
		freq:    hwy.Set(d, F(freq)),
		mask:    hwy.FromSlice(repeat(perms.HighestStoredValue(), hwy.LanesOf[F](d))),
		perms:   perms,
	}
	if !useFractal {
		return &single
	}
	return &fractalOctaves[F]{
		singleOctave: single,
		d:            d,
		octaves:      info.Octaves,
		lacunarity:   hwy.Set(d, F(info.Lacunarity)),
		gain:         F(info.Gain),
	}
}
