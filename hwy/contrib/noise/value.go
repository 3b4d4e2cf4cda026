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

// Value noise: the hash of the lattice cell containing each sample, in [0, 1].

func (k *kernel[F]) value1D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	h := perms.lookup(cell(c[0], freq, mask))
	return normalize(toFloat[F](h), mask)
}

func (k *kernel[F]) value2D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	h := perms.lookup(cell(c[0], freq, mask))
	h = perms.chain(h, cell(c[1], freq, mask), mask)
	return normalize(toFloat[F](h), mask)
}

func (k *kernel[F]) value3D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	h := perms.lookup(cell(c[0], freq, mask))
	h = perms.chain(h, cell(c[1], freq, mask), mask)
	h = perms.chain(h, cell(c[2], freq, mask), mask)
	return normalize(toFloat[F](h), mask)
}

// Smoothed value noise: corner hashes blended with quintic weights, X
// innermost, then Y, then Z.

func (k *kernel[F]) smooth1D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	x := k.axis(c[0], freq, mask)
	v0 := toFloat[F](perms.lookup(x.lo))
	v1 := toFloat[F](perms.lookup(x.hi))
	return normalize(hwy.FusedLerp(v0, v1, x.weight), mask)
}

func (k *kernel[F]) smooth2D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	x := k.axis(c[0], freq, mask)
	y := k.axis(c[1], freq, mask)

	hx0 := perms.lookup(x.lo)
	hx1 := perms.lookup(x.hi)

	v00 := toFloat[F](perms.chain(hx0, y.lo, mask))
	v10 := toFloat[F](perms.chain(hx1, y.lo, mask))
	v01 := toFloat[F](perms.chain(hx0, y.hi, mask))
	v11 := toFloat[F](perms.chain(hx1, y.hi, mask))

	y0 := hwy.FusedLerp(v00, v10, x.weight)
	y1 := hwy.FusedLerp(v01, v11, x.weight)
	return normalize(hwy.FusedLerp(y0, y1, y.weight), mask)
}

func (k *kernel[F]) smooth3D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	x := k.axis(c[0], freq, mask)
	y := k.axis(c[1], freq, mask)
	z := k.axis(c[2], freq, mask)

	hx0 := perms.lookup(x.lo)
	hx1 := perms.lookup(x.hi)
	h00 := perms.chain(hx0, y.lo, mask)
	h10 := perms.chain(hx1, y.lo, mask)
	h01 := perms.chain(hx0, y.hi, mask)
	h11 := perms.chain(hx1, y.hi, mask)

	corner := func(h, zi hwy.Vec[int32]) hwy.Vec[F] {
		return toFloat[F](perms.chain(h, zi, mask))
	}

	z0 := hwy.FusedLerp(
		hwy.FusedLerp(corner(h00, z.lo), corner(h10, z.lo), x.weight),
		hwy.FusedLerp(corner(h01, z.lo), corner(h11, z.lo), x.weight),
		y.weight)
	z1 := hwy.FusedLerp(
		hwy.FusedLerp(corner(h00, z.hi), corner(h10, z.hi), x.weight),
		hwy.FusedLerp(corner(h01, z.hi), corner(h11, z.hi), x.weight),
		y.weight)
	return normalize(hwy.FusedLerp(z0, z1, z.weight), mask)
}
