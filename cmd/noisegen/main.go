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

// Command noisegen renders noise tables to images and prints their statistics.
//
// Usage:
//
//	noisegen render --dims 2 --kind perlin --res 512,512 --step 0.01 --octaves 5 --out noise.png
//	noisegen render --dims 3 --res 128 --slice 64 --out slice.pgm
//	noisegen stats --kind value_smooth --res 1024 --dims 1
//	noisegen info
//
// Flags default to FASTNOISE_* environment variables where noted. A YAML
// file given with --config is applied over the defaults, and flags set on
// the command line are applied over the file.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-fastnoise/hwy"
	"github.com/ajroetker/go-fastnoise/hwy/contrib/noise"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("noisegen: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "noisegen",
		Short: "Generate SIMD-batched procedural noise",
		Long: `noisegen fills value, smoothed value and Perlin noise tables in 1, 2 or 3
dimensions, optionally as fractal octaves, and renders or summarises them.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCmd(), newStatsCmd(), newInfoCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a 2D table or a z-slice of a 3D table to PNG or PGM",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	addNoiseFlags(cmd)
	cmd.Flags().String("out", getEnvStr("FASTNOISE_OUT", "noise.png"), "Output image (.png or .pgm)")
	cmd.Flags().Int("slice", 0, "z index rendered from a 3D table")
	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print min, max and mean of a table",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	addNoiseFlags(cmd)
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD target",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD level:  %s\n", hwy.CurrentName())
			fmt.Fprintf(out, "Width:       %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(out, "float32:     %d lanes\n", hwy.MaxLanes[float32]())
			fmt.Fprintf(out, "float64:     %d lanes\n", hwy.MaxLanes[float64]())
			if hwy.NoSimdEnv() {
				fmt.Fprintln(out, "HWY_NO_SIMD is set")
			}
		},
	}
}

func addNoiseFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", getEnvStr("FASTNOISE_CONFIG", ""), "YAML config file")
	f.Int("dims", getEnvInt("FASTNOISE_DIMS", 2), "Number of dimensions (1-3)")
	f.String("kind", getEnvStr("FASTNOISE_KIND", "perlin"), "Noise type: value, value_smooth, perlin")
	f.Int("major", 0, "Contiguous axis of the table")
	f.Int("precision", getEnvInt("FASTNOISE_PRECISION", 32), "Sample precision: 32 or 64")
	f.Int("width", getEnvInt("FASTNOISE_WIDTH", 0), "Register width in bits: 128, 256, 512 (0 = detected)")
	f.IntSlice("res", []int{256, 256}, "Samples per axis; a short list repeats its last value")
	f.Float64Slice("start", []float64{0}, "Coordinate of index 0 per axis")
	f.Float64Slice("step", []float64{1.0 / 32}, "Coordinate increment per axis")
	f.Float64Slice("end", nil, "Exclusive end coordinate per axis (overrides --step)")
	f.Float64("freq", 1, "Base frequency")
	f.Int("octaves", 1, "Fractal octaves (1 disables fractal composition)")
	f.Float64("lacunarity", 2, "Frequency multiplier between octaves")
	f.Float64("gain", 0.5, "Amplitude multiplier between octaves")
	f.Int64("seed", getEnvInt64("FASTNOISE_SEED", 0), "Permutation seed")
	f.Int("perm-size", 256, "Permutation table size (power of two)")
	f.Int("workers", getEnvInt("FASTNOISE_WORKERS", 1), "Fill workers (0 = GOMAXPROCS)")
	f.String("cache-dir", getEnvStr("FASTNOISE_CACHE_DIR", ""), "Cache generated tables in this directory")
	f.Bool("verbose", getEnvBool("FASTNOISE_VERBOSE", false), "Log progress")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	verbose = cfg.Verbose

	g, err := generate(cfg)
	if err != nil {
		return err
	}
	width, height, samples := g.plane(cfg.Slice)
	if err := writeImage(cfg.Out, width, height, toGray(samples)); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Out, err)
	}
	debugf("wrote %s (%dx%d)", cfg.Out, width, height)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	verbose = cfg.Verbose

	g, err := generate(cfg)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(noise.StatsOf(g.Samples))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvBool returns environment variable as bool or default
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
