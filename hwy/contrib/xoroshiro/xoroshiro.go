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

package xoroshiro

import "math/bits"

// Lanes is the number of independent generators advanced per call.
const Lanes = 4

// Golden is the odd golden-ratio constant used to spread one seed over the
// eight lane words.
const Golden uint64 = 0x9E3779B97F4A7C15

// Rotation and shift amounts of the recurrence.
const (
	rotResult = 17
	rotS0     = 49
	shiftS1   = 9
	rotS1     = 28
)

// X4 is the scalar reference for the four-lane generator.
type X4 struct {
	s0 [Lanes]uint64
	s1 [Lanes]uint64
}

// New derives a generator from a single 64-bit seed. Lane i of s0 is
// seed + i*Golden and lane i of s1 is seed + (i+4)*Golden, so all eight
// words differ for any seed. Weak seeds such as 0 are accepted.
func New(seed uint64) *X4 {
	g := &X4{}
	g.s0, g.s1 = SeedLanes(seed)
	return g
}

// SeedLanes returns the initial lane words for seed. The vector variants
// load their registers from it.
func SeedLanes(seed uint64) (s0, s1 [Lanes]uint64) {
	for i := range Lanes {
		s0[i] = seed + uint64(i)*Golden
		s1[i] = seed + uint64(i+Lanes)*Golden
	}
	return s0, s1
}

// State returns a copy of the current lane words.
func (g *X4) State() (s0, s1 [Lanes]uint64) {
	return g.s0, g.s1
}

// Next advances all four lanes and returns one output word per lane.
func (g *X4) Next() [Lanes]uint64 {
	var out [Lanes]uint64
	for i := range Lanes {
		s0, s1 := g.s0[i], g.s1[i]
		out[i] = bits.RotateLeft64(s0+s1, rotResult) + s0

		t := s1 << shiftS1
		s1 ^= s0
		g.s0[i] = bits.RotateLeft64(s0, rotS0) ^ s1 ^ t
		g.s1[i] = bits.RotateLeft64(s1, rotS1)
	}
	return out
}

// Fill writes successive batches into dst, one [Lanes]uint64 per element.
func (g *X4) Fill(dst [][Lanes]uint64) {
	for i := range dst {
		dst[i] = g.Next()
	}
}
