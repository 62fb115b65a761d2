package hwy

import "golang.org/x/sys/cpu"

// ARM64 always has NEON (ASIMD), but no sampling kernel targets it yet, so
// the command refuses to run here unless the scalar kernel is allowed.

func init() {
	currentFeatures = Features{
		ASIMD: cpu.ARM64.HasASIMD,
	}

	if NoSimdEnv() {
		setScalarMode()
		return
	}

	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		setScalarMode()
	}
}
