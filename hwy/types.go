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

// Package hwy provides the portable lane abstraction the noise engine is
// written against.
//
// A Vec holds one register's worth of lanes. The number of lanes is fixed by
// a Tag (128, 256 or 512 bits, or the widest width detected at runtime) and
// by the element size, so one algorithm can be written once and run at every
// width:
//
//	d := hwy.FixedTag256[float32]{}
//	x := hwy.Iota(d, float32(0))          // [0 1 2 3 4 5 6 7]
//	y := hwy.MulAdd(x, hwy.Set(d, float32(2)), hwy.Set(d, float32(1)))
//	hwy.Store(y, out)
//
// Operations are implemented in pure Go over the lane slice. They preserve
// the semantics of the corresponding vector instructions (lane-wise math,
// masked integer hashing, gathers, shuffles) so callers can reason about a
// batch exactly as they would about a hardware register.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. It wraps one lane per element.
//
// Vec instances should not be created directly; use Load, Set or Iota.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}
