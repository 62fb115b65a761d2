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
	if hwy.CurrentLevel() >= hwy.DispatchAVX512 {
		register(&kernelSampler{
			name:   "avx512",
			level:  hwy.DispatchAVX512,
			mask:   insideMaskAVX512Array,
			sample: sampleAVX512,
		})
	}
}

// insideMaskAVX512 is insideMaskAVX2 with the lane swap done by one VPROLQ.
func (c *kernelConsts) insideMaskAVX512(xy archsimd.Float32x8) uint8 {
	sq := xy.Mul(xy)
	swapped := sq.AsUint64x4().RotateAllLeft(32).AsFloat32x8()
	return c.sign(sq.Add(swapped))
}

// InsideMask_AVX512 classifies four packed (x, y) pairs.
func InsideMask_AVX512(xy archsimd.Float32x8) uint8 {
	c := loadKernelConsts()
	return c.insideMaskAVX512(xy)
}

func insideMaskAVX512Array(xy [8]float32) uint8 {
	return InsideMask_AVX512(archsimd.LoadFloat32x8Slice(xy[:]))
}

func sampleAVX512(seed uint64, iterations int) uint64 {
	c := loadKernelConsts()
	g := xoroshiro.NewX4AVX512(seed)
	var hits uint64
	for range iterations {
		mask := c.insideMaskAVX512(c.unitFloats(g.Next()))
		hits += uint64(bits.OnesCount32(uint32(mask)))
	}
	return hits
}
