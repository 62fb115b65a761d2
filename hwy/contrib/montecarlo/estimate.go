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
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/workerpool"
)

// Result is the outcome of one estimation run.
type Result struct {
	// Inside is the number of lanes classified inside the circle.
	Inside uint64

	// Total is the number of lanes sampled.
	Total uint64

	// Pi is 4 × Inside / Total.
	Pi float64

	// Elapsed is the wall-clock time from dispatch to join.
	Elapsed time.Duration

	// Sampler is the name of the kernel that ran.
	Sampler string

	Workers    int
	Iterations int

	// PerWorker holds each task's local count, indexed by task.
	PerWorker []uint64
}

// String formats the result as the command's output line.
func (r *Result) String() string {
	return fmt.Sprintf("interior:%d total:%d pi:%v time:%v", r.Inside, r.Total, r.Pi, r.Elapsed)
}

// Estimate runs cfg.Workers independent sampling tasks and reduces their
// counts into one estimate of π.
//
// Every task seeds its own generator, runs cfg.Iterations batches, and adds
// its count to a shared atomic total exactly once. The estimate is computed
// after all tasks have returned.
func Estimate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sampler, err := Lookup(cfg.Sampler)
	if err != nil {
		return nil, err
	}
	if sampler.Level() == hwy.DispatchScalar && !cfg.AllowScalar {
		f := hwy.CPUFeatures()
		return nil, fmt.Errorf("%w (level %s, avx2=%t, vector build=%t)",
			ErrNoVectorSupport, hwy.CurrentName(), f.AVX2, f.VectorBuild)
	}

	log := cfg.logger().With("sampler", sampler.Name())
	seed := cfg.Seed
	if seed == nil {
		seed = func(int) uint64 { return rand.Uint64() }
	}

	pool := cfg.Pool
	if pool == nil {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	log.Debug("dispatching", "workers", cfg.Workers, "iterations", cfg.Iterations)

	var inside atomic.Uint64
	perWorker := make([]uint64, cfg.Workers)

	start := time.Now()
	pool.RunTasks(cfg.Workers, func(task int) {
		s := seed(task)
		local := sampler.Sample(s, cfg.Iterations)
		perWorker[task] = local
		inside.Add(local)
		log.Debug("worker done", "task", task, "seed", s, "inside", local)
	})
	elapsed := time.Since(start)

	res := &Result{
		Inside:     inside.Load(),
		Total:      cfg.TotalSamples(),
		Elapsed:    elapsed,
		Sampler:    sampler.Name(),
		Workers:    cfg.Workers,
		Iterations: cfg.Iterations,
		PerWorker:  perWorker,
	}
	res.Pi = 4 * float64(res.Inside) / float64(res.Total)
	return res, nil
}
