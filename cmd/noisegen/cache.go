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
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-fastnoise/hwy/contrib/noise"
)

// cache stores generated grids in a badger database keyed by the settings
// that determine the samples.
type cache struct {
	db *badger.DB
}

func openCache(dir string) (*cache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return &cache{db: db}, nil
}

func (c *cache) Close() error {
	return c.db.Close()
}

// cacheRequest is the part of a Config that determines sample values.
// Samples do not depend on the register width or the major axis.
type cacheRequest struct {
	Dims      int             `yaml:"dims"`
	Kind      noise.NoiseType `yaml:"kind"`
	Precision int             `yaml:"precision"`
	Noise     noise.Options   `yaml:"noise"`
}

func cacheKey(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cacheRequest{
		Dims:      cfg.Dims,
		Kind:      cfg.Kind,
		Precision: cfg.Precision,
		Noise:     cfg.Noise,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache key: %w", err)
	}
	return binary.BigEndian.AppendUint64([]byte("grid/"), xxhash.Sum64(data)), nil
}

func (c *cache) get(key []byte) (*grid, bool, error) {
	var g *grid
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var derr error
			g, derr = decodeGrid(val)
			return derr
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}
	return g, true, nil
}

func (c *cache) put(key []byte, g *grid) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encodeGrid(g))
	})
}

// encodeGrid writes the axis count, the extents and the samples, all
// little-endian.
func encodeGrid(g *grid) []byte {
	buf := make([]byte, 0, 4+4*len(g.Size)+8*len(g.Samples))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(g.Size)))
	for _, s := range g.Size {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(s))
	}
	for _, v := range g.Samples {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

var errCorruptGrid = errors.New("corrupt cached grid")

func decodeGrid(buf []byte) (*grid, error) {
	if len(buf) < 4 {
		return nil, errCorruptGrid
	}
	dims := int(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]
	if dims < 1 || dims > 3 || len(buf) < 4*dims {
		return nil, errCorruptGrid
	}

	g := &grid{Size: make([]int, dims)}
	n := 1
	for i := range g.Size {
		g.Size[i] = int(binary.LittleEndian.Uint32(buf[4*i:]))
		n *= g.Size[i]
	}
	buf = buf[4*dims:]
	if len(buf) != 8*n {
		return nil, errCorruptGrid
	}

	g.Samples = make([]float64, n)
	for i := range g.Samples {
		g.Samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return g, nil
}
