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
	"github.com/ajroetker/go-fastnoise/hwy/contrib/workerpool"
)

// Table is an N-dimensional grid of noise samples.
//
// Storage is a single slice. The non-major axes form the outer levels in
// ascending axis order and the major axis is innermost and contiguous, so a
// 3D table with major axis 0 is laid out [y][z][x] and with major axis 1 as
// [x][z][y]. The layout is invisible to At, which always takes (x, y, z).
//
// A Table must not be read while GenerateNoise runs.
type Table[F hwy.Floats] struct {
	dims  int
	major int
	d     hwy.Tag
	pool  *workerpool.Pool

	samples []F
	size    []int
	strides []int // per logical axis

	// last permutation table, reused while the PermutationInfo is unchanged
	perms     *Permutations
	permsInfo PermutationInfo
}

type tableConfig struct {
	tag  hwy.Tag
	pool *workerpool.Pool
}

// Option configures a Table.
type Option func(*tableConfig)

// WithTag selects the register width used for generation. The default is
// the widest width detected at runtime.
func WithTag(d hwy.Tag) Option {
	return func(c *tableConfig) { c.tag = d }
}

// WithPool fills tables in parallel on pool. Workers write disjoint runs of
// the major axis, so no locking is involved.
func WithPool(pool *workerpool.Pool) Option {
	return func(c *tableConfig) { c.pool = pool }
}

// NewTable creates an empty table with dims dimensions (1 to 3) whose major
// (contiguous) axis is major.
func NewTable[F hwy.Floats](dims, major int, opts ...Option) (*Table[F], error) {
	if dims < 1 || dims > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimensions, dims)
	}
	if major < 0 || major >= dims {
		return nil, fmt.Errorf("%w: major axis %d for %d dimensions", ErrInvalidMajorAxis, major, dims)
	}

	cfg := tableConfig{tag: hwy.ScalableTag[F]{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if hwy.LanesOf[F](cfg.tag) == 0 {
		return nil, fmt.Errorf("noise: register %s holds no lanes", cfg.tag.Name())
	}

	return &Table[F]{
		dims:    dims,
		major:   major,
		d:       cfg.tag,
		pool:    cfg.pool,
		size:    make([]int, dims),
		strides: make([]int, dims),
	}, nil
}

// Dims returns the number of dimensions.
func (t *Table[F]) Dims() int { return t.dims }

// Major returns the index of the contiguous axis.
func (t *Table[F]) Major() int { return t.major }

// Tag returns the register tag used for generation.
func (t *Table[F]) Tag() hwy.Tag { return t.d }

// Size returns the current extent of every axis.
func (t *Table[F]) Size() []int {
	return append([]int(nil), t.size...)
}

// SizeOf returns the current extent of one axis.
func (t *Table[F]) SizeOf(axis int) int {
	return t.size[axis]
}

// Len returns the number of samples in the current extent.
func (t *Table[F]) Len() int {
	n := 1
	for _, s := range t.size {
		n *= s
	}
	return n
}

// At returns the sample at logical coordinate (x[, y[, z]]).
//
// At does not check bounds: coordinates outside Size() either panic or
// silently read another sample. Use Lookup for a checked read.
func (t *Table[F]) At(coords ...int) F {
	offset := 0
	for axis, c := range coords {
		offset += c * t.strides[axis]
	}
	return t.samples[offset]
}

// Lookup is the bounds-checked form of At.
func (t *Table[F]) Lookup(coords ...int) (F, bool) {
	if len(coords) != t.dims {
		return 0, false
	}
	for axis, c := range coords {
		if c < 0 || c >= t.size[axis] {
			return 0, false
		}
	}
	return t.At(coords...), true
}

// Clone returns a deep copy of the table's samples and size.
// A configured pool is shared, not copied.
func (t *Table[F]) Clone() *Table[F] {
	c := *t
	c.samples = append([]F(nil), t.samples...)
	c.size = append([]int(nil), t.size...)
	c.strides = append([]int(nil), t.strides...)
	return &c
}

// outerAxes returns the non-major axes in ascending order.
func (t *Table[F]) outerAxes() []int {
	axes := make([]int, 0, t.dims-1)
	for axis := range t.dims {
		if axis != t.major {
			axes = append(axes, axis)
		}
	}
	return axes
}

// resize sets the logical size. Storage only ever grows.
func (t *Table[F]) resize(resolution []int) {
	copy(t.size, resolution)

	stride := 1
	t.strides[t.major] = stride
	stride *= t.size[t.major]
	outer := t.outerAxes()
	for i := len(outer) - 1; i >= 0; i-- {
		t.strides[outer[i]] = stride
		stride *= t.size[outer[i]]
	}

	if cap(t.samples) < stride {
		t.samples = make([]F, stride)
	}
	t.samples = t.samples[:stride]
}

// permutations returns the table for info, reusing the previous one when
// info is unchanged.
func (t *Table[F]) permutations(info PermutationInfo) (*Permutations, error) {
	if t.perms != nil && t.permsInfo == info {
		return t.perms, nil
	}
	perms, err := NewPermutations(info)
	if err != nil {
		return nil, err
	}
	t.perms, t.permsInfo = perms, info
	return perms, nil
}

// GenerateNoise fills the table with noise of the given kind.
//
// It returns false, leaving the table untouched, when opts is unusable; in
// particular when any axis of opts.Resolution is zero. proc may be nil.
func (t *Table[F]) GenerateNoise(kind NoiseType, opts Options, proc SampleProcessor[F]) bool {
	return t.Generate(kind, opts, proc) == nil
}

// Generate is GenerateNoise with the reason for a rejection.
func (t *Table[F]) Generate(kind NoiseType, opts Options, proc SampleProcessor[F]) error {
	if err := opts.Validate(t.dims); err != nil {
		return err
	}
	sampler, err := NewSampler[F](t.d, t.dims, kind)
	if err != nil {
		return err
	}
	perms, err := t.permutations(opts.Permutations)
	if err != nil {
		return err
	}

	t.resize(opts.Resolution)

	w := newWrapper(t.d, sampler, opts.Frequency, opts.UseFractal, opts.Fractal, perms)
	if proc == nil {
		proc = Identity[F]()
	}
	start := make([]F, t.dims)
	step := make([]F, t.dims)
	for axis, s := range opts.MakeStep() {
		start[axis] = F(opts.Start[axis])
		step[axis] = F(s)
	}

	t.fill(w, proc, start, step)
	return nil
}

// fill generates every run of the major axis. A run is one combination of
// the non-major indices; runs are stored back to back.
func (t *Table[F]) fill(w wrapper[F], proc SampleProcessor[F], start, step []F) {
	extent := t.size[t.major]
	runs := len(t.samples) / extent
	outer := t.outerAxes()

	fillRuns := func(first, last int) {
		coords := make([]hwy.Vec[F], t.dims)
		for r := first; r < last; r++ {
			rem := r
			for i := len(outer) - 1; i >= 0; i-- {
				axis := outer[i]
				index := rem % t.size[axis]
				rem /= t.size[axis]
				coords[axis] = t.coordinate(hwy.Set(t.d, F(index)), start[axis], step[axis])
			}
			t.fillRun(w, proc, coords, t.samples[r*extent:(r+1)*extent], start[t.major], step[t.major])
		}
	}

	if t.pool != nil {
		t.pool.ParallelFor(runs, fillRuns)
		return
	}
	fillRuns(0, runs)
}

// fillRun fills one contiguous run along the major axis: full batches are
// stored directly, the remainder lane by lane from one extra batch.
func (t *Table[F]) fillRun(w wrapper[F], proc SampleProcessor[F], coords []hwy.Vec[F], run []F, start, step F) {
	laneOffsets := hwy.Iota(t.d, F(0))
	majorAt := func(offset int) hwy.Vec[F] {
		return t.coordinate(hwy.Add(hwy.Set(t.d, F(offset)), laneOffsets), start, step)
	}

	hwy.ProcessWithTail[F](t.d, len(run),
		func(offset int) {
			coords[t.major] = majorAt(offset)
			hwy.Store(proc(w.sample(coords)), run[offset:])
		},
		func(offset, count int) {
			coords[t.major] = majorAt(offset)
			batch := proc(w.sample(coords))
			for k := range count {
				run[offset+k] = hwy.GetLane(batch, k)
			}
		},
	)
}

// coordinate returns start + step*index per lane. Every axis goes through
// this one expression so a logical index maps to the same coordinate
// whichever axis is major.
func (t *Table[F]) coordinate(index hwy.Vec[F], start, step F) hwy.Vec[F] {
	return hwy.MulAdd(index, hwy.Set(t.d, step), hwy.Set(t.d, start))
}
