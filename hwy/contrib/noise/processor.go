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
	"math"

	"github.com/ajroetker/go-fastnoise/hwy"
)

// SampleProcessor post-processes every batch of samples before it is stored.
// A nil SampleProcessor stores samples unchanged.
type SampleProcessor[F hwy.Floats] func(samples hwy.Vec[F]) hwy.Vec[F]

// Identity returns samples unchanged.
func Identity[F hwy.Floats]() SampleProcessor[F] {
	return func(samples hwy.Vec[F]) hwy.Vec[F] { return samples }
}

// Remap linearly maps [inLo, inHi] onto [outLo, outHi]. Values outside the
// input range are extrapolated.
func Remap[F hwy.Floats](d hwy.Tag, inLo, inHi, outLo, outHi F) SampleProcessor[F] {
	scale := (outHi - outLo) / (inHi - inLo)
	scaleV := hwy.Set(d, scale)
	offsetV := hwy.Set(d, outLo-inLo*scale)
	return func(samples hwy.Vec[F]) hwy.Vec[F] {
		return hwy.MulAdd(samples, scaleV, offsetV)
	}
}

// PerlinToUnit maps the Perlin range [-sqrt(dims)/2, sqrt(dims)/2] onto [0, 1].
func PerlinToUnit[F hwy.Floats](d hwy.Tag, dims int) SampleProcessor[F] {
	bound := F(PerlinBound(dims))
	return Remap(d, -bound, bound, 0, 1)
}

// PerlinBound returns the largest magnitude Perlin noise reaches in dims dimensions.
func PerlinBound(dims int) float64 {
	return math.Sqrt(float64(dims)) / 2
}

// Clamp limits samples to [lo, hi].
func Clamp[F hwy.Floats](d hwy.Tag, lo, hi F) SampleProcessor[F] {
	loV := hwy.Set(d, lo)
	hiV := hwy.Set(d, hi)
	return func(samples hwy.Vec[F]) hwy.Vec[F] {
		return hwy.Min(hwy.Max(samples, loV), hiV)
	}
}

// Chain applies processors in order. Nil entries are skipped.
func Chain[F hwy.Floats](processors ...SampleProcessor[F]) SampleProcessor[F] {
	return func(samples hwy.Vec[F]) hwy.Vec[F] {
		for _, p := range processors {
			if p != nil {
				samples = p(samples)
			}
		}
		return samples
	}
}
