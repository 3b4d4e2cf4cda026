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
	"fmt"
	"log"

	"github.com/ajroetker/go-fastnoise/hwy"
	"github.com/ajroetker/go-fastnoise/hwy/contrib/noise"
	"github.com/ajroetker/go-fastnoise/hwy/contrib/workerpool"
)

// grid is a generated table in logical order: x fastest, then y, then z.
type grid struct {
	Size    []int
	Samples []float64
}

// plane returns the x/y plane at z index slice. For 1D grids the plane is a
// single row.
func (g *grid) plane(slice int) (width, height int, samples []float64) {
	width, height = g.Size[0], 1
	if len(g.Size) > 1 {
		height = g.Size[1]
	}
	n := width * height
	offset := 0
	if len(g.Size) > 2 {
		offset = slice * n
	}
	return width, height, g.Samples[offset : offset+n]
}

// generate produces the grid described by cfg, reading and filling the
// cache when one is configured.
func generate(cfg *Config) (*grid, error) {
	var (
		c   *cache
		key []byte
	)
	if cfg.CacheDir != "" {
		var err error
		if c, err = openCache(cfg.CacheDir); err != nil {
			return nil, err
		}
		defer c.Close()

		if key, err = cacheKey(cfg); err != nil {
			return nil, err
		}
		g, ok, err := c.get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			debugf("cache hit %x", key)
			return g, nil
		}
		debugf("cache miss %x", key)
	}

	var pool *workerpool.Pool
	if cfg.Workers != 1 {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	var (
		g   *grid
		err error
	)
	if cfg.Precision == 64 {
		g, err = generateGrid[float64](cfg, pool)
	} else {
		g, err = generateGrid[float32](cfg, pool)
	}
	if err != nil {
		return nil, err
	}

	if c != nil {
		if err := c.put(key, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func generateGrid[F hwy.Floats](cfg *Config, pool *workerpool.Pool) (*grid, error) {
	d, err := hwy.TagForBits(cfg.Width)
	if err != nil {
		return nil, err
	}
	tableOpts := []noise.Option{noise.WithTag(d)}
	if pool != nil {
		tableOpts = append(tableOpts, noise.WithPool(pool))
	}

	tbl, err := noise.NewTable[F](cfg.Dims, cfg.Major, tableOpts...)
	if err != nil {
		return nil, err
	}
	debugf("generating %v %dD %v float%d on %s (%d lanes)",
		cfg.Kind, cfg.Dims, cfg.Noise.Resolution, cfg.Precision, d.Name(), hwy.LanesOf[F](d))
	if err := tbl.Generate(cfg.Kind, cfg.Noise, nil); err != nil {
		return nil, fmt.Errorf("failed to generate noise: %w", err)
	}

	size := tbl.Size()
	extent := [3]int{1, 1, 1}
	copy(extent[:], size)

	g := &grid{Size: size, Samples: make([]float64, 0, tbl.Len())}
	coords := make([]int, cfg.Dims)
	for z := range extent[2] {
		for y := range extent[1] {
			for x := range extent[0] {
				copy(coords, []int{x, y, z})
				g.Samples = append(g.Samples, float64(tbl.At(coords...)))
			}
		}
	}
	return g, nil
}

var verbose bool

func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
