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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-fastnoise/hwy/contrib/noise"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perlin.png")
	run(t, "render", "--res", "40,24", "--step", "0.1", "--octaves", "3", "--out", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestRenderPGMSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slice.pgm")
	run(t, "render", "--dims", "3", "--res", "6,5,4", "--slice", "2", "--kind", "value", "--out", path, "--workers", "2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	header := "P5\n6 5\n255\n"
	require.True(t, bytes.HasPrefix(data, []byte(header)))
	assert.Len(t, data, len(header)+6*5)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"render", "--res", "4,4", "--out", filepath.Join(t.TempDir(), "x.jpg")})
	assert.Error(t, root.Execute())
}

func TestStatsCommand(t *testing.T) {
	out := run(t, "stats", "--dims", "1", "--kind", "value", "--res", "300", "--step", "0.7")

	var st noise.Stats
	require.NoError(t, yaml.Unmarshal([]byte(out), &st))
	assert.GreaterOrEqual(t, st.Min, 0.0)
	assert.LessOrEqual(t, st.Max, 1.0)
	assert.Less(t, st.Min, st.Max)
}

func TestInfoCommand(t *testing.T) {
	out := run(t, "info")
	assert.Contains(t, out, "SIMD level:")
	assert.Contains(t, out, "float32:")
}

func TestGenerateMatchesAcrossWidthsAndMajors(t *testing.T) {
	base, err := parseRender(t, "--dims", "3", "--res", "9,4,3", "--step", "0.3")
	require.NoError(t, err)
	want, err := generate(base)
	require.NoError(t, err)

	for _, args := range [][]string{
		{"--width", "128", "--major", "1"},
		{"--width", "512", "--major", "2"},
		{"--workers", "3"},
	} {
		cfg, err := parseRender(t, append([]string{"--dims", "3", "--res", "9,4,3", "--step", "0.3"}, args...)...)
		require.NoError(t, err)
		got, err := generate(cfg)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: grid mismatch (-want +got):\n%s", args, diff)
		}
	}
}

func TestGridPlane(t *testing.T) {
	g := &grid{Size: []int{2, 2, 2}, Samples: []float64{0, 1, 2, 3, 4, 5, 6, 7}}
	w, h, s := g.plane(1)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []float64{4, 5, 6, 7}, s)

	row := &grid{Size: []int{3}, Samples: []float64{1, 2, 3}}
	w, h, s = row.plane(0)
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, []float64{1, 2, 3}, s)
}
