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

// Command hwypi estimates π with a vectorized Monte Carlo kernel.
//
// Usage:
//
//	hwypi                              # one worker per CPU, 2.5e9 batches each
//	hwypi -workers 13 -iterations 1e8
//	HWY_NO_SIMD=1 hwypi -allow-scalar  # force the scalar reference kernel
//
// On success it prints one line to stdout:
//
//	interior:<inside> total:<samples> pi:<estimate> time:<elapsed>
//
// A CPU without a vector kernel is refused (exit 1) unless -allow-scalar is
// given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/montecarlo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// countFlag accepts integers in plain or exponent form ("2500000000", "2.5e9").
type countFlag int

func (c *countFlag) String() string { return strconv.Itoa(int(*c)) }

func (c *countFlag) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		*c = countFlag(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return fmt.Errorf("not an integer: %q", s)
	}
	*c = countFlag(int(f))
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	def := montecarlo.DefaultConfig()
	workers := countFlag(def.Workers)
	iterations := countFlag(def.Iterations)

	fs := flag.NewFlagSet("hwypi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&workers, "workers", "Number of sampling workers (>= 1)")
	fs.Var(&iterations, "iterations", "Batches of 8 samples drawn by each worker (>= 1)")
	sampler := fs.String("sampler", "", "Sampling kernel (scalar, avx2, avx512); default is the widest available")
	allowScalar := fs.Bool("allow-scalar", false, "Run on the scalar kernel when no vector kernel is available")
	verbose := fs.Bool("v", false, "Log debug details to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f := hwy.CPUFeatures()
	logger.Debug("cpu",
		"level", hwy.CurrentName(),
		"width", hwy.CurrentWidth(),
		"avx2", f.AVX2,
		"avx512f", f.AVX512F,
		"avx512vl", f.AVX512VL,
		"popcnt", f.POPCNT,
		"asimd", f.ASIMD,
		"vector_build", f.VectorBuild,
	)

	cfg := montecarlo.Config{
		Workers:     int(workers),
		Iterations:  int(iterations),
		Sampler:     *sampler,
		AllowScalar: *allowScalar,
		Logger:      logger,
	}

	res, err := montecarlo.Estimate(cfg)
	if err != nil {
		logger.Error("estimate failed", "err", err)
		return 1
	}

	fmt.Fprintln(stdout, res)
	return 0
}
