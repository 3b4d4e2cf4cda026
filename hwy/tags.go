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

package hwy

import (
	"fmt"
	"unsafe"
)

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("avx2", "256bit", etc.)
	Name() string
}

// LanesOf returns the number of T lanes in a register described by d.
func LanesOf[T Lanes](d Tag) int {
	var dummy T
	return d.Width() / int(unsafe.Sizeof(dummy))
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return LanesOf[T](t)
}

// FixedTag128 forces 128-bit registers (SSE, NEON).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return LanesOf[T](t)
}

// FixedTag256 forces 256-bit registers (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return LanesOf[T](t)
}

// FixedTag512 forces 512-bit registers (AVX-512, SVE).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	return LanesOf[T](t)
}

// bitsTag is a Tag selected at runtime, e.g. from a command-line flag.
type bitsTag int

func (b bitsTag) Width() int   { return int(b) / 8 }
func (b bitsTag) Name() string { return fmt.Sprintf("%dbit", int(b)) }

// TagForBits returns a Tag for a register of the given size in bits.
// Zero selects the runtime width.
func TagForBits(bits int) (Tag, error) {
	switch bits {
	case 0:
		return ScalableTag[float32]{}, nil
	case 128, 256, 512:
		return bitsTag(bits), nil
	}
	return nil, fmt.Errorf("hwy: unsupported register width %d bits (want 128, 256 or 512)", bits)
}
