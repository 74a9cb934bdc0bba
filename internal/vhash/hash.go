// Package vhash implements the fasthash64 Merkle-Damgard hash used
// throughout VPACK: Slice.NormalizedHash, Slice.Hash and, in its fused
// 3-way form, the cuckoo index lookup. Grounded on Zilong Tan's
// fasthash as vendored by ArangoDB VelocyPack
// (_examples/original_source/src/fasthash.cpp); the mix step and block
// processing are byte-for-byte identical so the hash is deterministic
// across platforms for the same inputs, matching the reference.
package vhash

import "encoding/binary"

const fasthashMul = 0x880355f21e6d1965

func mix(h uint64) uint64 {
	h ^= h >> 23
	h *= 0x2127599bf4325c37
	h ^= h >> 47
	return h
}

// Hash64 computes fasthash64(buf, seed).
func Hash64(buf []byte, seed uint64) uint64 {
	const m = fasthashMul
	n := len(buf) / 8
	h := seed ^ (uint64(len(buf)) * m)

	for i := 0; i < n; i++ {
		v := binary.LittleEndian.Uint64(buf[i*8:])
		h ^= mix(v)
		h *= m
	}

	tail := buf[n*8:]
	var v uint64
	for i := len(tail) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(tail[i])
	}
	if len(tail) > 0 {
		h ^= mix(v)
		h *= m
	}

	return mix(h)
}

// Hash64x3 runs three independent fasthash64 accumulators over the same
// byte stream in one pass, one per seed in seeds. Used by the cuckoo
// object lookup to derive its three candidate slot hashes at once.
func Hash64x3(buf []byte, seeds [3]uint64) [3]uint64 {
	const m = fasthashMul
	n := len(buf) / 8

	var h [3]uint64
	length := uint64(len(buf))
	h[0] = seeds[0] ^ (length * m)
	h[1] = seeds[1] ^ (length * m)
	h[2] = seeds[2] ^ (length * m)

	for i := 0; i < n; i++ {
		v := binary.LittleEndian.Uint64(buf[i*8:])
		mv := mix(v)
		h[0] ^= mv
		h[1] ^= mv
		h[2] ^= mv
		h[0] *= m
		h[1] *= m
		h[2] *= m
	}

	tail := buf[n*8:]
	var v uint64
	for i := len(tail) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(tail[i])
	}
	if len(tail) > 0 {
		mv := mix(v)
		h[0] ^= mv
		h[1] ^= mv
		h[2] ^= mv
		h[0] *= m
		h[1] *= m
		h[2] *= m
	}

	h[0] = mix(h[0])
	h[1] = mix(h[1])
	h[2] = mix(h[2])
	return h
}

// Hash64FromUint computes fasthash64 over value's little-endian byte
// representation. Used by NormalizedHash to fold an array/object's
// length (XORed with its salt) into the accumulator the same way
// Slice::normalizedHash hashes `&n, sizeof(n)` in the reference
// implementation.
func Hash64FromUint(value uint64, seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return Hash64(buf[:], seed)
}

// FastMod32 is the fast unsigned modulo used for "small" cuckoo tables
// (nSlots <= 2^24): ((x & 0xFFFFFFFF) * n) >> 32.
func FastMod32(x uint64, n uint64) uint64 {
	return ((x & 0xFFFFFFFF) * n) >> 32
}
