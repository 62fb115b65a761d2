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

package montecarlo

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSeeds(base uint64) func(int) uint64 {
	return func(task int) uint64 { return base + uint64(task)*0x1234567 }
}

func TestEstimateReduction(t *testing.T) {
	for _, workers := range []int{1, 2, 13} {
		for run := range 3 {
			res, err := Estimate(Config{
				Workers:     workers,
				Iterations:  2000 + run,
				AllowScalar: true,
			})
			require.NoError(t, err)

			var sum uint64
			for _, c := range res.PerWorker {
				sum += c
			}
			require.Len(t, res.PerWorker, workers)
			assert.Equal(t, sum, res.Inside, "workers=%d run=%d", workers, run)
			assert.Equal(t, uint64(2000+run)*uint64(workers)*SamplesPerIteration, res.Total)
			assert.Equal(t, workers, res.Workers)
			assert.Equal(t, 2000+run, res.Iterations)
		}
	}
}

func TestEstimateDeterministicWithSeeds(t *testing.T) {
	cfg := Config{
		Workers:     4,
		Iterations:  1000,
		AllowScalar: true,
		Seed:        fixedSeeds(0),
	}
	a, err := Estimate(cfg)
	require.NoError(t, err)
	b, err := Estimate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.PerWorker, b.PerWorker)
	assert.Equal(t, a.Pi, b.Pi)

	// Task 0 with seed 0 matches a single scalar run.
	assert.Equal(t, uint64(6258), a.PerWorker[0])
}

func TestEstimateSharedPool(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	for _, workers := range []int{1, 3, 7} {
		res, err := Estimate(Config{
			Workers:     workers,
			Iterations:  500,
			AllowScalar: true,
			Seed:        fixedSeeds(11),
			Pool:        pool,
		})
		require.NoError(t, err)
		for task, c := range res.PerWorker {
			assert.Equal(t, Best().Sample(fixedSeeds(11)(task), 500), c, "task %d", task)
		}
	}
}

func TestEstimatePiFormula(t *testing.T) {
	res, err := Estimate(Config{Workers: 2, Iterations: 100, AllowScalar: true})
	require.NoError(t, err)
	assert.Equal(t, 4*float64(res.Inside)/float64(res.Total), res.Pi)
	assert.Equal(t, Best().Name(), res.Sampler)
}

func TestEstimateInvalidConfig(t *testing.T) {
	_, err := Estimate(Config{Workers: 0, Iterations: 1})
	require.ErrorIs(t, err, ErrInvalidWorkers)

	_, err = Estimate(Config{Workers: 1, Iterations: 0})
	require.ErrorIs(t, err, ErrInvalidIterations)

	_, err = Estimate(Config{Workers: 1, Iterations: 1, Sampler: "nope"})
	require.ErrorIs(t, err, ErrUnknownSampler)
}

func TestEstimateRefusesScalar(t *testing.T) {
	_, err := Estimate(Config{Workers: 1, Iterations: 1, Sampler: "scalar"})
	require.ErrorIs(t, err, ErrNoVectorSupport)

	_, err = Estimate(Config{Workers: 1, Iterations: 1})
	if hwy.Vectorized() {
		require.NoError(t, err)
	} else {
		require.ErrorIs(t, err, ErrNoVectorSupport)
	}
}

func TestEstimateLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Estimate(Config{Workers: 2, Iterations: 10, AllowScalar: true, Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "dispatching")
	assert.Equal(t, 2, strings.Count(out, "worker done"))
	assert.Contains(t, out, "sampler="+Best().Name())
}

func TestResultString(t *testing.T) {
	r := &Result{Inside: 6258, Total: 8000, Pi: 3.129, Elapsed: 1500000}
	assert.Equal(t, "interior:6258 total:8000 pi:3.129 time:1.5ms", r.String())
}

// TestEstimateConverges runs 10^8 samples per seed set and expects the
// estimate within 0.01 of π; the standard error at this size is about 2e-4.
func TestEstimateConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence run in short mode")
	}
	const (
		workers    = 4
		iterations = 100_000_000 / (workers * SamplesPerIteration)
	)
	for _, base := range []uint64{1, 0xC0FFEE, 0x5EED5EED} {
		res, err := Estimate(Config{
			Workers:     workers,
			Iterations:  iterations,
			AllowScalar: true,
			Seed:        fixedSeeds(base),
		})
		require.NoError(t, err)
		require.Equal(t, uint64(100_000_000), res.Total)
		assert.InDelta(t, math.Pi, res.Pi, 0.01, "seed base %#x", base)
	}
}
