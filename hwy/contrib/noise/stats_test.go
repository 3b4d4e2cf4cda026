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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyTable(t *testing.T) {
	tbl, err := NewTable[float32](2, 0)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, tbl.Stats())
}

func TestStatsMatchSamples(t *testing.T) {
	opts := DefaultOptions(2)
	opts.Resolution = []int{21, 13}
	opts.EndOrStep = []float64{0.3, 0.7}

	f32, err := NewTable[float32](2, 0)
	require.NoError(t, err)
	require.True(t, f32.GenerateNoise(ValueSmooth, opts, nil))
	f64, err := NewTable[float64](2, 0)
	require.NoError(t, err)
	require.True(t, f64.GenerateNoise(ValueSmooth, opts, nil))

	for _, st := range []Stats{f32.Stats(), f64.Stats()} {
		assert.GreaterOrEqual(t, st.Min, 0.0)
		assert.LessOrEqual(t, st.Max, 1.0)
		assert.True(t, st.Min <= st.Mean && st.Mean <= st.Max)
	}

	want := Stats{Min: f64.samples[0], Max: f64.samples[0]}
	sum := 0.0
	for _, v := range f64.samples {
		want.Min = min(want.Min, v)
		want.Max = max(want.Max, v)
		sum += v
	}
	want.Mean = sum / float64(len(f64.samples))
	got := f64.Stats()
	assert.Equal(t, want.Min, got.Min)
	assert.Equal(t, want.Max, got.Max)
	assert.InDelta(t, want.Mean, got.Mean, 1e-12)
}

type height float64

func TestStatsOf(t *testing.T) {
	want := Stats{Min: -1, Max: 5, Mean: 2}
	assert.Equal(t, want, StatsOf([]float64{2, -1, 5, 2}))
	assert.Equal(t, want, StatsOf([]float32{2, -1, 5, 2}))
	assert.Equal(t, want, StatsOf([]height{2, -1, 5, 2}))
	assert.Equal(t, Stats{}, StatsOf([]height(nil)))
}

func TestStatsFollowShrunkExtent(t *testing.T) {
	opts := DefaultOptions(1)
	opts.Resolution = []int{100}
	opts.EndOrStep = []float64{0.1}

	tbl, err := NewTable[float64](1, 0)
	require.NoError(t, err)
	require.True(t, tbl.GenerateNoise(Perlin, opts, nil))

	opts.Resolution = []int{1}
	opts.Start = []float64{0}
	require.True(t, tbl.GenerateNoise(Perlin, opts, nil))
	// a single lattice point: Perlin is zero there
	assert.Equal(t, Stats{}, tbl.Stats())
}
