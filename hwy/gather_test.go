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
	"testing"
)

func TestGatherIndex(t *testing.T) {
	src := []float32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	tests := []struct {
		name    string
		indices []int32
		want    []float32
	}{
		{
			name:    "sequential",
			indices: []int32{0, 1, 2, 3},
			want:    []float32{10, 20, 30, 40},
		},
		{
			name:    "scattered",
			indices: []int32{0, 4, 2, 8},
			want:    []float32{10, 50, 30, 90},
		},
		{
			name:    "repeated",
			indices: []int32{0, 0, 0, 0},
			want:    []float32{10, 10, 10, 10},
		},
		{
			name:    "out of bounds negative",
			indices: []int32{-1, 0, 1, 2},
			want:    []float32{0, 10, 20, 30},
		},
		{
			name:    "out of bounds positive",
			indices: []int32{0, 1, 100, 3},
			want:    []float32{10, 20, 0, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GatherIndex(src, FromSlice(tt.indices))
			for i, w := range tt.want {
				if result.data[i] != w {
					t.Errorf("lane %d: got %v, want %v", i, result.data[i], w)
				}
			}
		})
	}
}

func TestGatherIndexInt32Table(t *testing.T) {
	perm := []int32{3, 0, 2, 1}
	idx := And(FromSlice([]int32{4, 5, 6, 7, -1, 9, 2, 3}), Set(FixedTag256[int32]{}, int32(3)))
	want := []int32{3, 0, 2, 1, 1, 0, 2, 1}
	got := GatherIndex(perm, idx)
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
}

func TestGatherIndexInt64Indices(t *testing.T) {
	src := []float64{1.5, 2.5, 3.5}
	got := GatherIndex(src, FromSlice([]int64{2, 0}))
	if got.data[0] != 3.5 || got.data[1] != 1.5 {
		t.Errorf("GatherIndex with int64 indices: got %v, want [3.5 1.5]", got.data)
	}
}
