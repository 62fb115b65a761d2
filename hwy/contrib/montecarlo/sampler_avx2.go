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

package montecarlo

import (
	"math/bits"
	"simd/archsimd"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/xoroshiro"
)

func init() {
	if hwy.CurrentLevel() >= hwy.DispatchAVX2 {
		register(&kernelSampler{
			name:   "avx2",
			level:  hwy.DispatchAVX2,
			mask:   insideMaskAVX2Array,
			sample: sampleAVX2,
		})
	}
}

// kernelConsts holds the broadcast constants of the AVX2 and AVX-512
// kernels. They are built per call rather than at package init, which may run
// on CPUs without AVX.
type kernelConsts struct {
	expBits archsimd.Uint32x8
	one     archsimd.Float32x8
	zero    archsimd.Float32x8
}

func loadKernelConsts() kernelConsts {
	return kernelConsts{
		expBits: archsimd.BroadcastInt32x8(int32(hwy.UnitExponentBits)).AsUint32x8(),
		one:     archsimd.BroadcastFloat32x8(1.0),
		zero:    archsimd.BroadcastFloat32x8(0.0),
	}
}

// unitFloats reinterprets four 64-bit words as eight 32-bit lanes and maps
// each to [0, 1): keep the top 23 bits as mantissa, force the exponent of
// [1, 2), subtract 1.
func (c *kernelConsts) unitFloats(v archsimd.Uint64x4) archsimd.Float32x8 {
	m := v.AsUint32x8().ShiftAllRight(hwy.UnitMantissaShift).Or(c.expBits)
	return m.AsFloat32x8().Sub(c.one)
}

// sign turns x²+y² into a lane mask of x²+y²-1 < 0.
func (c *kernelConsts) sign(sum archsimd.Float32x8) uint8 {
	return sum.Sub(c.one).Less(c.zero).ToBits()
}

// insideMaskAVX2 squares every lane, adds each lane's pair partner and
// extracts the sign of the sum minus one. Rotating each 64-bit lane by 32
// swaps the x² and y² halves, the same permutation as SHUFPS 0xB1.
func (c *kernelConsts) insideMaskAVX2(xy archsimd.Float32x8) uint8 {
	sq := xy.Mul(xy)
	w := sq.AsUint64x4()
	swapped := xoroshiro.RotateLeft_AVX2_U64x4(w, 32).AsFloat32x8()
	return c.sign(sq.Add(swapped))
}

// UnitFloats_AVX2 converts one generator batch into eight uniform floats.
func UnitFloats_AVX2(v archsimd.Uint64x4) archsimd.Float32x8 {
	c := loadKernelConsts()
	return c.unitFloats(v)
}

// InsideMask_AVX2 classifies four packed (x, y) pairs.
func InsideMask_AVX2(xy archsimd.Float32x8) uint8 {
	c := loadKernelConsts()
	return c.insideMaskAVX2(xy)
}

func insideMaskAVX2Array(xy [8]float32) uint8 {
	return InsideMask_AVX2(archsimd.LoadFloat32x8Slice(xy[:]))
}

func sampleAVX2(seed uint64, iterations int) uint64 {
	c := loadKernelConsts()
	g := xoroshiro.NewX4AVX2(seed)
	var hits uint64
	for range iterations {
		mask := c.insideMaskAVX2(c.unitFloats(g.Next()))
		hits += uint64(bits.OnesCount32(uint32(mask)))
	}
	return hits
}
