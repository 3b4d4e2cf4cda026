//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the pure Go lanes at 128 bits.
	setScalarMode()
}
