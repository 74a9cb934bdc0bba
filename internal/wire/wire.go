// Package wire holds the little-endian integer and variable-length integer
// codecs shared by the Builder (which writes VPACK values) and Slice (which
// reads them), so the two sides can never drift out of sync with each
// other. Grounded on the read side of ArangoDB VelocyPack's Slice.cpp
// (readInteger helpers) and the LEB128-style length encoding described for
// compact arrays/objects.
package wire

// ReadUint reads a little-endian unsigned integer of the given width (1, 2,
// 4 or 8 bytes) starting at buf[0].
func ReadUint(buf []byte, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(buf[i]) << (8 * uint(i))
	}
	return v
}

// PutUint writes value into buf[0:width] as a little-endian unsigned
// integer of the given width.
func PutUint(buf []byte, width int, value uint64) {
	for i := 0; i < width; i++ {
		buf[i] = byte(value >> (8 * uint(i)))
	}
}

// AppendVarint appends value to dst using a standard forward LEB128
// encoding (least-significant 7-bit group first, high bit set on every
// byte but the last).
func AppendVarint(dst []byte, value uint64) []byte {
	for value >= 0x80 {
		dst = append(dst, byte(value)|0x80)
		value >>= 7
	}
	return append(dst, byte(value))
}

// ReadVarintForward decodes a forward LEB128 integer starting at
// buf[pos], returning the value and the number of bytes consumed.
func ReadVarintForward(buf []byte, pos int) (uint64, int) {
	var v uint64
	var shift uint
	n := 0
	for {
		b := buf[pos+n]
		n++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return v, n
}

// AppendVarintReversed appends value's LEB128 groups to dst in reversed
// byte order, so that ReadVarintReverse (walking backward from the end of
// the buffer) recovers it group-by-group exactly as ReadVarintForward
// would walking forward. Used for the trailing item count of compact
// arrays/objects, which is only known after the payload has already been
// written.
func AppendVarintReversed(dst []byte, value uint64) []byte {
	var tmp [10]byte
	n := 0
	for value >= 0x80 {
		tmp[n] = byte(value) | 0x80
		value >>= 7
		n++
	}
	tmp[n] = byte(value)
	n++
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, tmp[i])
	}
	return dst
}

// ReadVarintReverse decodes a reversed LEB128 integer ending at buf[end]
// (exclusive), walking backward. Returns the value and the number of
// bytes consumed.
func ReadVarintReverse(buf []byte, end int) (uint64, int) {
	var v uint64
	var shift uint
	n := 0
	pos := end - 1
	for {
		b := buf[pos]
		n++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		pos--
	}
	return v, n
}

// WidthFor returns the smallest width in {1, 2, 4, 8} that can represent n.
func WidthFor(n uint64) int {
	switch {
	case n <= 0xff:
		return 1
	case n <= 0xffff:
		return 2
	case n <= 0xffffffff:
		return 4
	default:
		return 8
	}
}
