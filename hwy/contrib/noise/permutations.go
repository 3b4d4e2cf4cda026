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
	"math/bits"
	"math/rand"

	"github.com/samber/lo"

	"github.com/ajroetker/go-fastnoise/hwy"
)

// DefaultPermutationSize is the permutation table size used when
// PermutationInfo.Size is zero.
const DefaultPermutationSize = 256

// PermutationInfo describes how to build a permutation table.
type PermutationInfo struct {
	// Seed drives the shuffle. Equal seeds give equal tables.
	Seed int64 `yaml:"seed"`

	// Size is the number of entries, a power of two. Zero means DefaultPermutationSize.
	Size int `yaml:"size"`
}

// Permutations is an immutable hash table from lattice indices to
// pseudo-random values. It is safe for concurrent use.
type Permutations struct {
	values  []int32
	highest int32
}

// NewPermutations builds a seeded shuffle of 0..Size-1.
func NewPermutations(info PermutationInfo) (*Permutations, error) {
	size := info.Size
	if size == 0 {
		size = DefaultPermutationSize
	}
	if size < 0 || bits.OnesCount(uint(size)) != 1 || size > 1<<30 {
		return nil, fmt.Errorf("%w: size %d is not a power of two", ErrInvalidPermutations, info.Size)
	}

	values := make([]int32, size)
	for i := range values {
		values[i] = int32(i)
	}
	rng := rand.New(rand.NewSource(info.Seed))
	rng.Shuffle(size, func(i, j int) { values[i], values[j] = values[j], values[i] })

	return &Permutations{values: values, highest: int32(size - 1)}, nil
}

// PermutationsFromValues wraps a caller-provided table. The values are copied.
//
// The highest stored value becomes the hashing mask, so it should be of the
// form 2^k-1 and lie inside the table. A table whose values are all zero
// degenerates to a constant hash: Value and ValueSmooth then divide 0 by 0
// and produce NaN, and Perlin always picks the first gradient. This is not
// checked.
func PermutationsFromValues(values []int32) *Permutations {
	v := make([]int32, len(values))
	copy(v, values)
	return &Permutations{values: v, highest: lo.Max(v)}
}

// At returns the value stored at index i. The index is not masked.
func (p *Permutations) At(i int32) int32 {
	return p.values[i]
}

// HighestStoredValue returns the largest stored value, used as the hashing mask.
func (p *Permutations) HighestStoredValue() int32 {
	return p.highest
}

// Len returns the number of entries.
func (p *Permutations) Len() int {
	return len(p.values)
}

// lookup gathers P[idx] for every lane.
func (p *Permutations) lookup(idx hwy.Vec[int32]) hwy.Vec[int32] {
	return hwy.GatherIndex(p.values, idx)
}

// chain hashes the next axis into h: P[(h + next) & mask].
func (p *Permutations) chain(h, next, mask hwy.Vec[int32]) hwy.Vec[int32] {
	return p.lookup(hwy.And(hwy.Add(h, next), mask))
}
