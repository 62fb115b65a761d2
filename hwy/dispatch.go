package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set the sampling kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline). No kernel
	// targets SSE2, so it refuses to run like scalar does.
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions with the VL extension, so
	// 256-bit registers get native lane rotates and mask registers.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features reports the CPU capabilities relevant to the sampling kernels,
// independent of whether this binary carries a kernel for them.
type Features struct {
	AVX2     bool
	AVX512F  bool
	AVX512VL bool
	POPCNT   bool
	ASIMD    bool

	// VectorBuild is true when the binary was compiled with vector kernels
	// (GOEXPERIMENT=simd on amd64).
	VectorBuild bool
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// currentFeatures is filled by init() in dispatch_*.go files.
var currentFeatures Features

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// 16 for scalar/SSE2/NEON, 32 for AVX2 and AVX-512 (the kernels use 256-bit
// registers on both).
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// CPUFeatures returns the detected CPU capabilities.
func CPUFeatures() Features {
	return currentFeatures
}

// Vectorized reports whether the current level has a vector sampling kernel.
func Vectorized() bool {
	return currentLevel == DispatchAVX2 || currentLevel == DispatchAVX512
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the dispatch level is forced to scalar regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
