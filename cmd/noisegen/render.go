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
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/viterin/vek"
)

// toGray maps samples onto 0..255 using their minimum and maximum. A
// constant plane maps to 0.
func toGray(samples []float64) []uint8 {
	if len(samples) == 0 {
		return nil
	}
	pix := slices.Clone(samples)
	lo, hi := vek.Min(pix), vek.Max(pix)
	vek.AddNumber_Inplace(pix, -lo)

	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}
	vek.MulNumber_Inplace(pix, scale)

	out := make([]uint8, len(pix))
	for i, v := range pix {
		out[i] = uint8(min(max(math.Round(v), 0), 255))
	}
	return out
}

// writeImage writes an 8-bit grayscale image, PNG or PGM by extension.
func writeImage(path string, width, height int, pix []uint8) (err error) {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(w io.Writer) error {
			img := image.NewGray(image.Rect(0, 0, width, height))
			copy(img.Pix, pix)
			return png.Encode(w, img)
		}
	case ".pgm":
		encode = func(w io.Writer) error { return writePGM(w, width, height, pix) }
	default:
		return fmt.Errorf("unsupported image format %q (want .png or .pgm)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}

// writePGM writes a binary (P5) portable graymap.
func writePGM(w io.Writer, width, height int, pix []uint8) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	if _, err := bw.Write(pix[:width*height]); err != nil {
		return err
	}
	return bw.Flush()
}
