// Package simdtext provides the bulk byte-range primitives the JSON
// parser leans on for its "SIMD-friendly" fast path: skipping runs of
// whitespace and copying string payload bytes until a quote, backslash,
// control byte, or (in the validating variant) an invalid UTF-8 lead
// byte is seen.
//
// biggeezerdevelopment/simdjson-go's internal/scanner
// (simd_amd64.go/simd_arm64.go) declares real AVX2/SSE4.2/NEON assembly
// entry points for the equivalent operations, but ships no .s files
// backing any of them for any architecture, so there is nothing to
// port byte-for-byte. This package keeps the same hasSIMD()-gated shape
// — cpu_amd64.go/simd_amd64.go probe golang.org/x/sys/cpu for
// AVX2/SSE4.2 exactly as the teacher's cpu_amd64.go does, simd_other.go
// reports false on every other architecture — but processes 8 bytes at
// a time with SWAR (SIMD-within-a-register) bit tricks over uint64
// words instead of vector instructions, the idiomatic-Go analogue
// available without fabricating assembly that was never actually
// backed. A CPU that fails the probe falls straight to the scalar byte
// loop every function here already needs as its tail case.
//
// Contract: each function advances past the longest prefix of
// acceptable bytes, never reads a source byte at or beyond count (or
// beyond len(data) for SkipWhitespace), and never writes more than
// count output bytes, so callers may pass the full remaining length as
// count.
package simdtext

import "encoding/binary"

const wordSize = 8

// repeat replicates b into all 8 bytes of a uint64.
func repeat(b byte) uint64 {
	return 0x0101010101010101 * uint64(b)
}

// hasZeroByte reports whether any byte of x is 0x00, using the classic
// bit trick: (x - 0x01..01) & ^x & 0x80..80 is nonzero iff some byte
// underflowed from 0x00.
func hasZeroByte(x uint64) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (x-lo)&^x&hi != 0
}

// hasByte reports whether any byte of x equals b.
func hasByte(x uint64, b byte) bool {
	return hasZeroByte(x ^ repeat(b))
}

// hasLessThan reports whether any byte of x is strictly less than n
// (n must be <= 0x80 for the trick to hold, which suffices for our use:
// detecting control bytes < 0x20).
func hasLessThan(x uint64, n byte) bool {
	const hi = 0x8080808080808080
	return (x-repeat(n))&^x&hi != 0
}

// hasHighBit reports whether any byte of x has its top bit set (i.e. is
// part of a multi-byte UTF-8 sequence or raw non-ASCII byte).
func hasHighBit(x uint64) bool {
	const hi = 0x8080808080808080
	return x&hi != 0
}

// allSpaces is a word of 8 ASCII spaces, the single most common run of
// JSON whitespace (indentation); words equal to it are skipped 8 bytes
// at a time without falling back to the scalar loop.
var allSpaces = repeat(' ')

// SkipWhitespace returns the length of the longest leading run of JSON
// whitespace ({0x20, 0x09, 0x0a, 0x0d}) in data.
func SkipWhitespace(data []byte) int {
	i := 0
	if hasSIMD() {
		for i+wordSize <= len(data) && binary.LittleEndian.Uint64(data[i:]) == allSpaces {
			i += wordSize
		}
	}
	for i < len(data) && isWhitespace(data[i]) {
		i++
	}
	return i
}

// isWhitespace reports whether b is JSON whitespace.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// CopyString copies bytes from src into dst, stopping at the first
// quote, backslash, or control byte (< 0x20), or after count bytes,
// whichever comes first. It returns the number of bytes copied. dst and
// src must both have at least count bytes available; no byte at or
// beyond count is read.
func CopyString(dst, src []byte, count int) int {
	i := 0
	if hasSIMD() {
		for i+wordSize <= count {
			w := binary.LittleEndian.Uint64(src[i:])
			if hasByte(w, '"') || hasByte(w, '\\') || hasLessThan(w, 0x20) {
				break
			}
			binary.LittleEndian.PutUint64(dst[i:], w)
			i += wordSize
		}
	}
	for i < count {
		c := src[i]
		if c == '"' || c == '\\' || c < 0x20 {
			break
		}
		dst[i] = c
		i++
	}
	return i
}

// CopyStringCheckUTF8 behaves like CopyString but additionally stops
// just before any byte with its high bit set, so the caller's slow path
// can validate the multi-byte sequence itself.
func CopyStringCheckUTF8(dst, src []byte, count int) int {
	i := 0
	if hasSIMD() {
		for i+wordSize <= count {
			w := binary.LittleEndian.Uint64(src[i:])
			if hasByte(w, '"') || hasByte(w, '\\') || hasLessThan(w, 0x20) || hasHighBit(w) {
				break
			}
			binary.LittleEndian.PutUint64(dst[i:], w)
			i += wordSize
		}
	}
	for i < count {
		c := src[i]
		if c == '"' || c == '\\' || c < 0x20 || c >= 0x80 {
			break
		}
		dst[i] = c
		i++
	}
	return i
}
