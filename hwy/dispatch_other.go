//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures have no vector kernel.
	setScalarMode()
}
