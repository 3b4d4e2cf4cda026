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

import "math"

// Floor rounds each lane down (toward negative infinity).
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Floor(float64(x)))
	}
	return Vec[T]{data: result}
}

// ConvertToInt32 converts float lanes to int32 (truncate toward zero).
// For values outside the int32 range, the result is undefined.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(x)
	}
	return Vec[int32]{data: result}
}

// ConvertFromInt32 converts int32 lanes to the float type T.
func ConvertFromInt32[T Floats](v Vec[int32]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(x)
	}
	return Vec[T]{data: result}
}

// FloorToInt32 floors each lane and converts the result to int32.
// It returns both the integral part (as int32) and the floored float lanes,
// which callers typically need to derive the fractional part.
func FloorToInt32[T Floats](v Vec[T]) (Vec[int32], Vec[T]) {
	floored := Floor(v)
	return ConvertToInt32(floored), floored
}
