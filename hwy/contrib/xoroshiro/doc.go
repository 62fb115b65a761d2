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

// Package xoroshiro implements a four-lane xoroshiro128++ style generator for
// vector sampling kernels.
//
// Each of the four lanes runs its own copy of the recurrence
//
//	result = rotl(s0+s1, 17) + s0
//	t      = s1 << 9
//	s1     = s1 ^ s0
//	s0     = rotl(s0, 49) ^ s1 ^ t
//	s1     = rotl(s1, 28)
//
// and lanes never mix, so one 256-bit register pair advances four
// generators with a handful of instructions. Note the shift term uses the
// pre-update s1 and a shift of 9; outputs therefore differ from the
// published xoroshiro128++ reference.
//
// X4 is the portable reference. X4AVX2 and X4AVX512 (amd64 with
// GOEXPERIMENT=simd) produce bit-identical output from archsimd registers.
// None of the generators are safe for concurrent use: each worker owns one.
package xoroshiro
