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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fastnoise/hwy"
)

func TestGradientTableShape(t *testing.T) {
	tests := []struct {
		dims int
		len  int
		mask int32
	}{
		{1, 2, 1},
		{2, 8, 7},
		{3, 16, 15},
	}
	for _, tc := range tests {
		g := Gradients[float32](tc.dims)
		require.NotNil(t, g)
		assert.Equal(t, tc.dims, g.Dims)
		assert.Equal(t, tc.len, g.Len())
		assert.Equal(t, tc.mask, g.Mask)
	}
	assert.Nil(t, Gradients[float32](0))
	assert.Nil(t, Gradients[float64](4))
}

func TestGradientsAreUnitLength(t *testing.T) {
	for dims := 1; dims <= 3; dims++ {
		g := Gradients[float64](dims)
		for i := range int32(g.Len()) {
			lanes := g.Select(i).Data()
			norm := 0.0
			for a := range dims {
				norm += lanes[a] * lanes[a]
			}
			assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-12, "dims=%d gradient %d", dims, i)
		}
	}
}

func TestGradientPacking(t *testing.T) {
	g1 := Gradients[float32](1).Select(1).Data()
	assert.Equal(t, []float32{-1, -1, -1, -1}, g1)

	g2 := Gradients[float64](2).Select(2).Data()
	assert.Equal(t, []float64{0, 1, 0, 1}, g2)

	g3 := Gradients[float64](3).Select(4).Data()
	s := 1 / math.Sqrt2
	assert.InDeltaSlice(t, []float64{s, 0, s, s}, g3, 1e-15)

	for dims := 1; dims <= 3; dims++ {
		assert.Equal(t, GradientLanes, Gradients[float64](dims).Select(0).NumLanes())
	}
}

func TestGradientSelectMasksIndex(t *testing.T) {
	g := Gradients[float64](3)
	assert.Equal(t, g.Select(3).Data(), g.Select(3+16).Data())
	assert.Equal(t, g.Select(15).Data(), g.Select(-1).Data())
}

func TestGradientsAreShared(t *testing.T) {
	assert.Same(t, Gradients[float32](2), Gradients[float32](2))
	assert.Same(t, Gradients[float64](3), Gradients[float64](3))
}

func TestGradientGatherMatchesSelect(t *testing.T) {
	g := Gradients[float32](3)
	h := hwy.FromSlice([]int32{0, 5, 17, 255})
	gx, gy, gz := g.gather(h)
	for lane, idx := range h.Data() {
		want := g.Select(idx).Data()
		assert.Equal(t, want[0], hwy.GetLane(gx, lane))
		assert.Equal(t, want[1], hwy.GetLane(gy, lane))
		assert.Equal(t, want[2], hwy.GetLane(gz, lane))
	}
}
