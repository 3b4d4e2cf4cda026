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

func TestLanesOf(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"128/float32", LanesOf[float32](FixedTag128[float32]{}), 4},
		{"128/float64", LanesOf[float64](FixedTag128[float64]{}), 2},
		{"256/float32", LanesOf[float32](FixedTag256[float32]{}), 8},
		{"256/int32", LanesOf[int32](FixedTag256[float32]{}), 8},
		{"512/float64", LanesOf[float64](FixedTag512[float64]{}), 8},
		{"512/float32", FixedTag512[float32]{}.MaxLanes(), 16},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d lanes, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestScalableTag(t *testing.T) {
	w := ScalableTag[float32]{}.Width()
	if w != CurrentWidth() {
		t.Errorf("ScalableTag.Width() = %d, want CurrentWidth() %d", w, CurrentWidth())
	}
	switch w {
	case 16, 32, 64:
	default:
		t.Errorf("unexpected runtime width %d", w)
	}
	if got, want := MaxLanes[float32](), w/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q", CurrentName())
	}
}

func TestTagForBits(t *testing.T) {
	tests := []struct {
		bits  int
		width int
		name  string
	}{
		{128, 16, "128bit"},
		{256, 32, "256bit"},
		{512, 64, "512bit"},
	}
	for _, tt := range tests {
		d, err := TagForBits(tt.bits)
		if err != nil {
			t.Fatalf("TagForBits(%d): %v", tt.bits, err)
		}
		if d.Width() != tt.width || d.Name() != tt.name {
			t.Errorf("TagForBits(%d) = (%d, %q), want (%d, %q)", tt.bits, d.Width(), d.Name(), tt.width, tt.name)
		}
	}

	d, err := TagForBits(0)
	if err != nil {
		t.Fatalf("TagForBits(0): %v", err)
	}
	if d.Width() != CurrentWidth() {
		t.Errorf("TagForBits(0).Width() = %d, want %d", d.Width(), CurrentWidth())
	}

	for _, bits := range []int{64, 100, 1024, -128} {
		if _, err := TagForBits(bits); err == nil {
			t.Errorf("TagForBits(%d): expected error", bits)
		}
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}
