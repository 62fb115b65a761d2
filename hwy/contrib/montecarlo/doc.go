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

// Package montecarlo estimates π by sampling points in the unit square and
// counting the fraction that lands inside the quarter circle.
//
// The hot loop draws one batch of four 64-bit words from a xoroshiro.X4
// style generator, turns it into eight uniform floats (four (x, y) pairs) by
// forcing the float exponent, and classifies all four pairs with a
// branch-free sign test on x²+y²-1. Each pair occupies two lanes and both
// lanes report the same classification, so hits are counted per lane and a
// batch is eight samples.
//
// A Sampler runs that loop for one worker. Samplers are registered per
// instruction set (scalar, avx2, avx512) and Best picks the widest one the
// CPU supports. Estimate fans a fixed number of workers out over a
// workerpool.Pool and folds their counts into one atomic total.
//
// Points with x²+y² exactly 1 are classified outside: the difference is +0
// and its sign bit is clear.
package montecarlo
