//go:build !amd64

package simdtext

// hasSIMD returns false for architectures with no capability probe
// wired in, sending every call straight to the scalar byte loop.
func hasSIMD() bool {
	return false
}
