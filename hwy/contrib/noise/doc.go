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

// Package noise generates procedural noise tables a register at a time.
//
// Three lattice noise algorithms are provided in one, two and three
// dimensions:
//
//	Value       - hashed lattice value at the containing cell, in [0, 1]
//	ValueSmooth - quintic-smoothed interpolation of the 2^N cell corners, in [0, 1]
//	Perlin      - gradient noise from unit gradients, in [-sqrt(N)/2, sqrt(N)/2]
//
// Every algorithm hashes integer lattice coordinates through a Permutations
// table: h = P[x&m], h = P[(h+y)&m], h = P[(h+z)&m], where m is the table's
// highest stored value. Samples are computed for a whole batch of lanes at
// once using the hwy package, and optionally composed into fractal noise over
// several octaves.
//
// # Tables
//
// A Table fills an N-dimensional grid. One axis, the major axis, is stored
// contiguously and is the axis the generator strides along in register-sized
// batches:
//
//	tbl, err := noise.NewTable[float32](2, 0)
//	opts := noise.DefaultOptions(2)
//	opts.Resolution = []int{512, 512}
//	opts.EndOrStep = []float64{0.01, 0.01}
//	if !tbl.GenerateNoise(noise.Perlin, opts, nil) {
//	    // zero-sized resolution
//	}
//	v := tbl.At(10, 20)
//
// Access is always by logical (x, y, z) coordinate, independent of which axis
// is major. At does not bounds-check; Lookup does.
package noise
