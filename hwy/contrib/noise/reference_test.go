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

import "math"

// Scalar reference implementations, written one sample at a time the
// obvious way. The batched samplers must agree with them.

func refFade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func refLerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// refHash hashes lattice cells: P[x&m], then P[(h + (c&m)) & m] per axis.
func refHash(p *Permutations, cells []int32) int32 {
	m := p.HighestStoredValue()
	h := p.At(cells[0] & m)
	for _, c := range cells[1:] {
		h = p.At((h + c&m) & m)
	}
	return h
}

// refSample evaluates one sample of the given kind at coords.
func refSample(kind NoiseType, coords []float64, freq float64, p *Permutations) float64 {
	dims := len(coords)
	m := p.HighestStoredValue()

	lo := make([]int32, dims)
	frac := make([]float64, dims)
	weight := make([]float64, dims)
	for a, c := range coords {
		s := c * freq
		f := math.Floor(s)
		lo[a] = int32(f)
		frac[a] = s - f
		weight[a] = refFade(frac[a])
	}

	if kind == Value {
		return float64(refHash(p, lo)) / float64(m)
	}

	// corner c uses the upper cell on axis a when bit a of c is set.
	values := make([]float64, 1<<dims)
	cells := make([]int32, dims)
	for c := range values {
		for a := range dims {
			cells[a] = lo[a] + int32(c>>a&1)
		}
		h := refHash(p, cells)
		if kind == ValueSmooth {
			values[c] = float64(h)
			continue
		}
		g := Gradients[float64](dims).Select(h).Data()
		dot := 0.0
		for a := range dims {
			dot += g[a] * (frac[a] - float64(c>>a&1))
		}
		values[c] = dot
	}

	// Blend X first, then Y, then Z.
	for a := range dims {
		half := len(values) / 2
		next := make([]float64, half)
		for i := range half {
			// pairs differ in the lowest remaining bit
			next[i] = refLerp(values[2*i], values[2*i+1], weight[a])
		}
		values = next
	}

	if kind == ValueSmooth {
		return values[0] / float64(m)
	}
	return values[0]
}

// refFractal composes octaves of refSample the same way the wrapper does.
func refFractal(kind NoiseType, coords []float64, freq float64, info FractalInfo, p *Permutations) float64 {
	result := refSample(kind, coords, freq, p)
	if info.Octaves <= 1 {
		return result
	}
	amplitude, span := 1.0, 1.0
	for range info.Octaves - 1 {
		freq *= info.Lacunarity
		amplitude *= info.Gain
		span += amplitude
		result += amplitude * refSample(kind, coords, freq, p)
	}
	return result / span
}
