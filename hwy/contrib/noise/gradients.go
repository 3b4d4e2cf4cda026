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
	"sync"

	"github.com/ajroetker/go-fastnoise/hwy"
)

// GradientLanes is the lane count of a packed gradient register.
// Components beyond the gradient's dimensionality repeat existing axes.
const GradientLanes = 4

var (
	invSqrt2 = 1 / math.Sqrt2

	// gradients1D are the two 1D directions.
	gradients1D = [][3]float64{{1}, {-1}}

	// gradients2D are the axis directions and the normalised diagonals.
	gradients2D = [][3]float64{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{invSqrt2, invSqrt2}, {-invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}, {-invSqrt2, -invSqrt2},
	}

	// gradients3D are the 12 cube-edge midpoints, normalised, followed by
	// Perlin's four repeats of existing edges to reach a power of two.
	gradients3D = [][3]float64{
		{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
		{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
		{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
		{1, 1, 0}, {-1, 1, 0}, {0, -1, 1}, {0, -1, -1},
	}
)

// GradientTable holds the Perlin gradient set for one dimensionality, both as
// per-component arrays (for gathering a batch of gradients) and as packed
// registers (one gradient per register).
type GradientTable[F hwy.Floats] struct {
	// Dims is the dimensionality of the gradients.
	Dims int

	// Mask is Len()-1; Len() is a power of two.
	Mask int32

	components [3][]F
	packed     []hwy.Vec[F]

	// maskLanes is Mask broadcast over the widest register.
	maskLanes hwy.Vec[int32]
}

// Len returns the number of gradients.
func (g *GradientTable[F]) Len() int {
	return len(g.packed)
}

// Select returns gradient idx&Mask packed into GradientLanes lanes:
// 1D as (x,x,x,x), 2D as (x,y,x,y) and 3D as (x,y,z,x).
func (g *GradientTable[F]) Select(idx int32) hwy.Vec[F] {
	return g.packed[idx&g.Mask]
}

// gather returns the components of gradient h&Mask for every lane.
// Components beyond Dims are returned as empty vectors.
func (g *GradientTable[F]) gather(h hwy.Vec[int32]) (gx, gy, gz hwy.Vec[F]) {
	idx := hwy.And(h, g.maskLanes)
	gx = hwy.GatherIndex(g.components[0], idx)
	if g.Dims > 1 {
		gy = hwy.GatherIndex(g.components[1], idx)
	}
	if g.Dims > 2 {
		gz = hwy.GatherIndex(g.components[2], idx)
	}
	return gx, gy, gz
}

func newGradientTable[F hwy.Floats](dims int, dirs [][3]float64) *GradientTable[F] {
	scale := 1.0
	if dims == 3 {
		scale = invSqrt2
	}

	g := &GradientTable[F]{
		Dims:      dims,
		Mask:      int32(len(dirs) - 1),
		packed:    make([]hwy.Vec[F], len(dirs)),
		maskLanes: hwy.Set(hwy.FixedTag512[int32]{}, int32(len(dirs)-1)),
	}
	for axis := range dims {
		g.components[axis] = make([]F, len(dirs))
	}

	for i, dir := range dirs {
		var raw [GradientLanes]F
		for axis := range dims {
			c := F(dir[axis] * scale)
			g.components[axis][i] = c
			raw[axis] = c
		}
		v := hwy.FromSlice(raw[:])
		switch dims {
		case 1:
			g.packed[i] = hwy.Broadcast(v, 0)
		case 2:
			g.packed[i] = hwy.Blend(hwy.Broadcast(v, 0), hwy.Broadcast(v, 1), 0b1010)
		default:
			g.packed[i] = hwy.Shuffle0123(v, 0, 1, 2, 0)
		}
	}
	return g
}

func buildGradientTables[F hwy.Floats]() [4]*GradientTable[F] {
	return [4]*GradientTable[F]{
		1: newGradientTable[F](1, gradients1D),
		2: newGradientTable[F](2, gradients2D),
		3: newGradientTable[F](3, gradients3D),
	}
}

var (
	gradientTables32 = sync.OnceValue(buildGradientTables[float32])
	gradientTables64 = sync.OnceValue(buildGradientTables[float64])
)

// Gradients returns the process-wide gradient table for 1, 2 or 3 dimensions.
// The tables are built once on first use and never modified.
func Gradients[F hwy.Floats](dims int) *GradientTable[F] {
	if dims < 1 || dims > 3 {
		return nil
	}
	var zero F
	switch any(zero).(type) {
	case float32:
		return any(gradientTables32()[dims]).(*GradientTable[F])
	case float64:
		return any(gradientTables64()[dims]).(*GradientTable[F])
	}
	// Named float types get a private copy.
	return buildGradientTables[F]()[dims]
}
