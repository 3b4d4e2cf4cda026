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

import (
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-fastnoise/hwy"
)

// Stats summarises the samples of a table.
type Stats struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Mean float64 `yaml:"mean"`
}

// Stats returns the minimum, maximum and mean over the current extent.
// An empty table yields the zero Stats.
func (t *Table[F]) Stats() Stats {
	return StatsOf(t.samples)
}

// StatsOf returns the minimum, maximum and mean of samples. float32 slices
// are reduced with vek32; everything else is widened to float64 for vek.
func StatsOf[F hwy.Floats](samples []F) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	if s, ok := any(samples).([]float32); ok {
		return Stats{
			Min:  float64(vek32.Min(s)),
			Max:  float64(vek32.Max(s)),
			Mean: float64(vek32.Mean(s)),
		}
	}
	s, ok := any(samples).([]float64)
	if !ok {
		s = make([]float64, len(samples))
		for i, v := range samples {
			s[i] = float64(v)
		}
	}
	return Stats{Min: vek.Min(s), Max: vek.Max(s), Mean: vek.Mean(s)}
}
