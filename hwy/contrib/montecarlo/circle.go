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
	"math"
	"math/bits"
)

// evenLanes selects one lane per (x, y) pair.
const evenLanes = 0x55

// InsideMask classifies four (x, y) pairs packed as
// [x0, y0, x1, y1, x2, y2, x3, y3]. Bit i is set when lane i's pair satisfies
// x²+y²-1 < 0 by sign, so both bits of an inside pair are set.
//
// This is the scalar reference for the vector kernels: every product and sum
// is rounded to float32 exactly as the vector instructions round it.
func InsideMask(xy [8]float32) uint8 {
	var sq [8]float32
	for i, v := range xy {
		sq[i] = float32(v * v)
	}

	var mask uint8
	for i := range sq {
		// i^1 is the pair partner, the scalar form of swapping adjacent lanes.
		d := float32(sq[i]+sq[i^1]) - 1
		mask |= uint8(math.Float32bits(d)>>31) << i
	}
	return mask
}

// InsidePairs returns how many of the four pairs are inside the circle.
func InsidePairs(xy [8]float32) int {
	return bits.OnesCount8(InsideMask(xy) & evenLanes)
}

// PackPairs lays out up to four points in the lane order the kernels use.
// Missing points are left at (0, 0).
func PackPairs(points ...[2]float32) [8]float32 {
	var xy [8]float32
	for i, p := range points[:min(len(points), 4)] {
		xy[2*i], xy[2*i+1] = p[0], p[1]
	}
	return xy
}
