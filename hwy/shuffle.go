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

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// Broadcast broadcasts a single lane to all lanes in the vector.
// An out-of-range lane yields a zero vector.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	result := make([]T, len(v.data))
	if lane < 0 || lane >= len(v.data) {
		return Vec[T]{data: result}
	}
	value := v.data[lane]
	for i := range result {
		result[i] = value
	}
	return Vec[T]{data: result}
}

// Shuffle0123 shuffles each block of 4 lanes according to the given indices.
// For example: Shuffle0123(v, 3, 2, 1, 0) reverses a 4-lane vector.
// Vectors with fewer than 4 lanes are returned unchanged.
func Shuffle0123[T Lanes](v Vec[T], i0, i1, i2, i3 int) Vec[T] {
	n := len(v.data)
	if n < 4 {
		return v
	}
	result := make([]T, n)
	for base := 0; base+4 <= n; base += 4 {
		result[base+0] = v.data[base+i0]
		result[base+1] = v.data[base+i1]
		result[base+2] = v.data[base+i2]
		result[base+3] = v.data[base+i3]
	}
	return Vec[T]{data: result}
}

// Blend selects lane i from b when bit i of mask is set, and from a otherwise.
// This mirrors the immediate-operand blend instructions, limited to 64 lanes.
func Blend[T Lanes](a, b Vec[T], mask uint64) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if mask&(1<<uint(i)) != 0 {
			result[i] = b.data[i]
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}
