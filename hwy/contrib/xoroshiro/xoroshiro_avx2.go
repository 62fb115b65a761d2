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

//go:build amd64 && goexperiment.simd

package xoroshiro

import (
	"simd/archsimd"
)

// X4AVX2 keeps the four lanes in two Uint64x4 registers. AVX2 has no 64-bit
// rotate, so rotations are built from a shift pair.
type X4AVX2 struct {
	s0 archsimd.Uint64x4
	s1 archsimd.Uint64x4
}

// NewX4AVX2 seeds the generator exactly like New.
func NewX4AVX2(seed uint64) *X4AVX2 {
	s0, s1 := SeedLanes(seed)
	return &X4AVX2{
		s0: archsimd.LoadUint64x4Slice(s0[:]),
		s1: archsimd.LoadUint64x4Slice(s1[:]),
	}
}

// RotateLeft_AVX2_U64x4 rotates every 64-bit lane left by k (0 < k < 64).
func RotateLeft_AVX2_U64x4(x archsimd.Uint64x4, k uint64) archsimd.Uint64x4 {
	return x.ShiftAllLeft(k).Or(x.ShiftAllRight(64 - k))
}

// Next advances all lanes and returns the four output words in a register.
func (g *X4AVX2) Next() archsimd.Uint64x4 {
	s0, s1 := g.s0, g.s1
	result := RotateLeft_AVX2_U64x4(s0.Add(s1), rotResult).Add(s0)

	t := s1.ShiftAllLeft(shiftS1)
	s1 = s1.Xor(s0)
	g.s0 = RotateLeft_AVX2_U64x4(s0, rotS0).Xor(s1).Xor(t)
	g.s1 = RotateLeft_AVX2_U64x4(s1, rotS1)

	return result
}

// NextLanes is Next stored to memory, for comparisons against X4.
func (g *X4AVX2) NextLanes() [Lanes]uint64 {
	var out [Lanes]uint64
	g.Next().StoreSlice(out[:])
	return out
}
