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

import (
	"math"
	"testing"
)

func TestBitsToUnitFloat(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want float32
	}{
		{"zero", 0, 0},
		{"low_bits_ignored", 0x1FF, 0},
		{"half", 0x80000000, 0.5},
		{"quarter", 0x40000000, 0.25},
		{"max", 0xFFFFFFFF, 1 - 1.0/UnitSteps},
		{"one_step", 1 << UnitMantissaShift, 1.0 / UnitSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitsToUnitFloat(tt.in); got != tt.want {
				t.Errorf("BitsToUnitFloat(%#x) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestBitsToUnitFloatAllMantissas walks every achievable mantissa.
func TestBitsToUnitFloatAllMantissas(t *testing.T) {
	prev := float32(-1)
	for m := uint32(0); m < UnitSteps; m++ {
		got := BitsToUnitFloat(m << UnitMantissaShift)
		if got < 0 || got >= 1 {
			t.Fatalf("mantissa %#x: %v outside [0, 1)", m, got)
		}
		if got <= prev {
			t.Fatalf("mantissa %#x: %v not above previous %v", m, got, prev)
		}
		if want := float32(m) / UnitSteps; got != want {
			t.Fatalf("mantissa %#x: got %v, want %v", m, got, want)
		}
		prev = got
	}
}

func TestUnitFloatsLayout(t *testing.T) {
	batch := [4]uint64{
		0x80000000_00000000, // lo 0, hi 0.5
		0x40000000_80000000, // lo 0.5, hi 0.25
		0xFFFFFFFF_00000000,
		0x00000000_FFFFFFFF,
	}
	want := [8]float32{0, 0.5, 0.5, 0.25, 0, 1 - 1.0/UnitSteps, 1 - 1.0/UnitSteps, 0}
	got := UnitFloats(batch)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnitExponentBits(t *testing.T) {
	if math.Float32frombits(UnitExponentBits) != 1 {
		t.Errorf("exponent bits %#x do not encode 1.0", UnitExponentBits)
	}
}
