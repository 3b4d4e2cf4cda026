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

// Perlin noise: each corner hash selects a gradient, dotted with the
// displacement from that corner; the dot products are blended X, then Y,
// then Z with the smoothed weights.

func (k *kernel[F]) perlin1D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	x := k.axis(c[0], freq, mask)
	dx1 := hwy.Sub(x.frac, k.unit)

	g0 := k.dot1(perms.lookup(x.lo), x.frac)
	g1 := k.dot1(perms.lookup(x.hi), dx1)
	return hwy.FusedLerp(g0, g1, x.weight)
}

func (k *kernel[F]) perlin2D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	x := k.axis(c[0], freq, mask)
	y := k.axis(c[1], freq, mask)
	dx1 := hwy.Sub(x.frac, k.unit)
	dy1 := hwy.Sub(y.frac, k.unit)

	hx0 := perms.lookup(x.lo)
	hx1 := perms.lookup(x.hi)

	g00 := k.dot2(perms.chain(hx0, y.lo, mask), x.frac, y.frac)
	g10 := k.dot2(perms.chain(hx1, y.lo, mask), dx1, y.frac)
	g01 := k.dot2(perms.chain(hx0, y.hi, mask), x.frac, dy1)
	g11 := k.dot2(perms.chain(hx1, y.hi, mask), dx1, dy1)

	y0 := hwy.FusedLerp(g00, g10, x.weight)
	y1 := hwy.FusedLerp(g01, g11, x.weight)
	return hwy.FusedLerp(y0, y1, y.weight)
}

func (k *kernel[F]) perlin3D(c []hwy.Vec[F], freq hwy.Vec[F], mask hwy.Vec[int32], perms *Permutations) hwy.Vec[F] {
	x := k.axis(c[0], freq, mask)
	y := k.axis(c[1], freq, mask)
	z := k.axis(c[2], freq, mask)
	dx1 := hwy.Sub(x.frac, k.unit)
	dy1 := hwy.Sub(y.frac, k.unit)
	dz1 := hwy.Sub(z.frac, k.unit)

	hx0 := perms.lookup(x.lo)
	hx1 := perms.lookup(x.hi)
	h00 := perms.chain(hx0, y.lo, mask)
	h10 := perms.chain(hx1, y.lo, mask)
	h01 := perms.chain(hx0, y.hi, mask)
	h11 := perms.chain(hx1, y.hi, mask)

	// layer blends the four corners of the z-slice at lattice zi, displaced by dz.
	layer := func(zi hwy.Vec[int32], dz hwy.Vec[F]) hwy.Vec[F] {
		g00 := k.dot3(perms.chain(h00, zi, mask), x.frac, y.frac, dz)
		g10 := k.dot3(perms.chain(h10, zi, mask), dx1, y.frac, dz)
		g01 := k.dot3(perms.chain(h01, zi, mask), x.frac, dy1, dz)
		g11 := k.dot3(perms.chain(h11, zi, mask), dx1, dy1, dz)
		return hwy.FusedLerp(
			hwy.FusedLerp(g00, g10, x.weight),
			hwy.FusedLerp(g01, g11, x.weight),
			y.weight)
	}

	return hwy.FusedLerp(layer(z.lo, z.frac), layer(z.hi, dz1), z.weight)
}

func (k *kernel[F]) dot1(h hwy.Vec[int32], dx hwy.Vec[F]) hwy.Vec[F] {
	gx, _, _ := k.grads.gather(h)
	return hwy.Mul(gx, dx)
}

func (k *kernel[F]) dot2(h hwy.Vec[int32], dx, dy hwy.Vec[F]) hwy.Vec[F] {
	gx, gy, _ := k.grads.gather(h)
	return hwy.MulAdd(gy, dy, hwy.Mul(gx, dx))
}

func (k *kernel[F]) dot3(h hwy.Vec[int32], dx, dy, dz hwy.Vec[F]) hwy.Vec[F] {
	gx, gy, gz := k.grads.gather(h)
	return hwy.MulAdd(gz, dz, hwy.MulAdd(gy, dy, hwy.Mul(gx, dx)))
}
