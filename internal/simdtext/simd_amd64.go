//go:build amd64

package simdtext

// hasSIMD reports whether the CPU advertises AVX2 or SSE4.2, the same
// gate biggeezerdevelopment/simdjson-go's scanner checks before taking
// its wide-word path. The 8-byte SWAR loops below are plain uint64
// arithmetic rather than real vector instructions, but they still only
// pay off on a wide enough word/cache pipeline, so a CPU failing this
// probe falls straight to the scalar byte loop.
func hasSIMD() bool {
	return hasAVX2() || hasSSE42()
}
