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
	"log/slog"
	"math"
	"runtime"

	"github.com/ajroetker/hwypi/hwy/contrib/workerpool"
)

// DefaultIterations is the number of batches each worker draws by default.
const DefaultIterations = 2_500_000_000

// Config describes one estimation run.
type Config struct {
	// Workers is the number of independent sampling tasks. Default: NumCPU.
	Workers int

	// Iterations is the number of batches each task draws.
	Iterations int

	// Sampler names the kernel to use. Empty selects Best.
	Sampler string

	// AllowScalar permits running on the scalar kernel. Without it a CPU
	// lacking a vector kernel is refused with ErrNoVectorSupport.
	AllowScalar bool

	// Seed returns the generator seed for a task. Nil draws an
	// unpredictable seed per task.
	Seed func(task int) uint64

	// Pool runs the tasks. Nil creates a pool of Workers goroutines for the
	// duration of the run.
	Pool *workerpool.Pool

	// Logger receives debug records about the run. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with one worker per logical CPU and
// DefaultIterations per worker.
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		Iterations: DefaultIterations,
	}
}

// Validate checks the numeric parameters and the sampler name.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidIterations, c.Iterations)
	}
	if limit := math.MaxUint64 / SamplesPerIteration / uint64(c.Workers); uint64(c.Iterations) > limit {
		return fmt.Errorf("%w: %d × %d workers × %d samples overflows the sample counter (max %d iterations)",
			ErrInvalidIterations, c.Iterations, c.Workers, SamplesPerIteration, limit)
	}
	if _, err := Lookup(c.Sampler); err != nil {
		return err
	}
	return nil
}

// TotalSamples is Iterations × Workers × SamplesPerIteration. Validate
// guarantees it does not overflow.
func (c Config) TotalSamples() uint64 {
	return uint64(c.Iterations) * uint64(c.Workers) * SamplesPerIteration
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
