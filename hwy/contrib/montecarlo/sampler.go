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
	"math/bits"
	"slices"
	"strings"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/xoroshiro"
)

// SamplesPerIteration is the number of lanes classified per generator batch.
const SamplesPerIteration = 8

// Sampler runs the sampling loop of one worker on a particular instruction
// set. Implementations are stateless and safe for concurrent use; each call
// to Sample owns its generator.
type Sampler interface {
	// Name identifies the sampler ("scalar", "avx2", "avx512").
	Name() string

	// Level is the dispatch level the sampler's instructions require.
	Level() hwy.DispatchLevel

	// InsideMask classifies one packed batch with this sampler's
	// instructions. See the package-level InsideMask for the layout.
	InsideMask(xy [8]float32) uint8

	// Sample seeds a generator, runs iterations batches and returns the
	// number of inside lanes.
	Sample(seed uint64, iterations int) uint64
}

// kernelSampler adapts a pair of kernel functions to Sampler.
type kernelSampler struct {
	name   string
	level  hwy.DispatchLevel
	mask   func(xy [8]float32) uint8
	sample func(seed uint64, iterations int) uint64
}

func (s *kernelSampler) Name() string { return s.name }
func (s *kernelSampler) Level() hwy.DispatchLevel { return s.level }
func (s *kernelSampler) InsideMask(xy [8]float32) uint8 { return s.mask(xy) }
func (s *kernelSampler) Sample(seed uint64, n int) uint64 { return s.sample(seed, n) }

// Scalar is the portable reference sampler. It is always registered and is
// the baseline the vector samplers are checked against.
var Scalar Sampler = &kernelSampler{
	name:   "scalar",
	level:  hwy.DispatchScalar,
	mask:   InsideMask,
	sample: sampleScalar,
}

// samplers holds every sampler usable on this CPU, scalar first.
// Arch files append to it from init().
var samplers = []Sampler{Scalar}

func register(s Sampler) {
	samplers = append(samplers, s)
}

func sampleScalar(seed uint64, iterations int) uint64 {
	g := xoroshiro.New(seed)
	var hits uint64
	for range iterations {
		hits += uint64(bits.OnesCount8(InsideMask(hwy.UnitFloats(g.Next()))))
	}
	return hits
}

// Samplers returns the samplers available on this CPU.
func Samplers() []Sampler {
	return slices.Clone(samplers)
}

// Best returns the sampler with the widest instruction set available.
func Best() Sampler {
	best := samplers[0]
	for _, s := range samplers[1:] {
		if s.Level() > best.Level() {
			best = s
		}
	}
	return best
}

// Lookup returns the sampler registered under name (case-insensitive).
// An empty name selects Best.
func Lookup(name string) (Sampler, error) {
	if name == "" {
		return Best(), nil
	}
	for _, s := range samplers {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	names := make([]string, len(samplers))
	for i, s := range samplers {
		names[i] = s.Name()
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownSampler, name, strings.Join(names, ", "))
}
