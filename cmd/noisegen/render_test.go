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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGray(t *testing.T) {
	got := toGray([]float64{-1, 0, 1, 0.5, -0.5, 1})
	assert.Equal(t, []uint8{0, 128, 255, 191, 64, 255}, got)

	flat := toGray([]float64{0.3, 0.3, 0.3, 0.3})
	assert.Equal(t, []uint8{0, 0, 0, 0}, flat)

	assert.Nil(t, toGray(nil))
}

func TestWritePGM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePGM(&buf, 3, 2, []uint8{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, "P5\n3 2\n255\n\x01\x02\x03\x04\x05\x06", buf.String())
}
