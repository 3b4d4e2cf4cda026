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

// smoother evaluates the quintic fade curve 6t^5 - 15t^4 + 10t^3 on every lane.
type smoother[F hwy.Floats] struct {
	six        hwy.Vec[F]
	ten        hwy.Vec[F]
	negFifteen hwy.Vec[F]
}

func newSmoother[F hwy.Floats](d hwy.Tag) smoother[F] {
	return smoother[F]{
		six:        hwy.Set(d, F(6)),
		ten:        hwy.Set(d, F(10)),
		negFifteen: hwy.Set(d, F(-15)),
	}
}

// apply returns t^3 * (t*(6t - 15) + 10). Inputs outside [0, 1] are not special-cased.
func (s smoother[F]) apply(t hwy.Vec[F]) hwy.Vec[F] {
	inner := hwy.MulAdd(t, s.six, s.negFifteen)
	inner = hwy.MulAdd(t, inner, s.ten)
	t3 := hwy.Mul(hwy.Mul(t, t), t)
	return hwy.Mul(t3, inner)
}
