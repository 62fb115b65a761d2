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

package hwy

import "math"

// Bit layout used to turn random words into uniform floats.
//
// float32 = sign(1) | exponent(8) | mantissa(23). With the exponent field
// fixed at the bias (127) and the sign clear, the 23 mantissa bits select one
// of 2^23 equally spaced values in [1.0, 2.0). Subtracting 1.0 maps them onto
// [0.0, 1.0) exactly, since every such difference is representable.
const (
	// UnitMantissaShift discards the low bits of a 32-bit random word; the
	// remaining 23 high bits become the mantissa.
	UnitMantissaShift = 9

	// UnitExponentBits is the biased exponent for [1.0, 2.0) in place.
	UnitExponentBits uint32 = 127 << 23

	// UnitSteps is the number of distinct values BitsToUnitFloat produces.
	UnitSteps = 1 << 23
)

// BitsToUnitFloat converts a 32-bit random pattern to a uniform float32 in
// [0, 1). Only the top 23 bits of u are used; the result is strictly
// increasing in u >> 9 and equal to (u >> 9) / 2^23.
func BitsToUnitFloat(u uint32) float32 {
	return math.Float32frombits((u>>UnitMantissaShift)|UnitExponentBits) - 1
}

// UnitFloats splits a batch of four 64-bit random words into eight uniform
// floats. Word i fills lane 2i with its low half and lane 2i+1 with its high
// half, matching a little-endian reinterpretation of the 256-bit register.
// Adjacent lanes (2i, 2i+1) form one (x, y) pair.
func UnitFloats(batch [4]uint64) [8]float32 {
	var out [8]float32
	for i, w := range batch {
		out[2*i] = BitsToUnitFloat(uint32(w))
		out[2*i+1] = BitsToUnitFloat(uint32(w >> 32))
	}
	return out
}
