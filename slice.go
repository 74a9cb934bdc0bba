package vpack

import (
	"bytes"
	"math"
	"strings"

	"github.com/vpackdb/vpack/internal/vhash"
	"github.com/vpackdb/vpack/internal/vtype"
	"github.com/vpackdb/vpack/internal/wire"
)

// Slice is a non-owning, zero-cost view over a VPACK-encoded value: a
// single byte slice pointing at the value's head byte. Every accessor
// decodes directly from the underlying bytes; nothing is parsed ahead of
// time. Grounded on ArangoDB VelocyPack's Slice
// (_examples/original_source/src/Slice.cpp), generalized from its
// pointer-plus-implicit-length C++ shape to Go's slice header.
//
// A Slice's backing array may extend past the value's own ByteSize (it
// is typically a sub-slice of a larger document); callers that need an
// exact-length copy should take buf[:s.ByteSize()].
type Slice struct {
	buf []byte
}

const (
	arrayHashSalt  = 0xba5bedf00d
	objectHashSalt = 0xf00ba44ba5
)

// FromBytes wraps an existing VPACK-encoded byte slice. The caller is
// responsible for the bytes outliving the returned Slice; use a
// SliceScope to take an owned copy when that isn't already guaranteed.
func FromBytes(b []byte) Slice {
	return Slice{buf: b}
}

// Bytes returns the raw bytes backing the Slice, trimmed to exactly its
// ByteSize.
func (s Slice) Bytes() []byte {
	return s.buf[:s.ByteSize()]
}

// Head returns the value's head byte, or 0 if the Slice is empty.
func (s Slice) Head() byte {
	if len(s.buf) == 0 {
		return vtype.HeadNone
	}
	return s.buf[0]
}

// Type reports the value's kind.
func (s Slice) Type() vtype.ValueType {
	return vtype.TypeMap[s.Head()]
}

// TypeName returns Type().String().
func (s Slice) TypeName() string {
	return s.Type().String()
}

func widthForIntHead(h byte) int {
	if h >= vtype.HeadUIntBase+1 {
		return int(h - vtype.HeadUIntBase)
	}
	return int(h - vtype.HeadIntBase)
}

// ByteSize returns the total number of bytes the value occupies,
// including its head byte.
func (s Slice) ByteSize() int {
	h := s.Head()
	switch {
	case h == vtype.HeadNone, h == vtype.HeadEmptyArray, h == vtype.HeadEmptyObject:
		return 1
	case h >= 0x02 && h <= 0x09:
		w := int(vtype.WidthMap[h])
		return int(wire.ReadUint(s.buf[1:], w))
	case h >= 0x0b && h <= 0x0e:
		w := int(vtype.WidthMap[h])
		return int(wire.ReadUint(s.buf[1:], w))
	case h == vtype.HeadCompactArray || h == vtype.HeadCompactObject:
		v, _ := wire.ReadVarintForward(s.buf, 1)
		return int(v)
	case h == vtype.HeadIllegal, h == vtype.HeadMinKey, h == vtype.HeadMaxKey:
		return 1
	case h == vtype.HeadNull, h == vtype.HeadFalse, h == vtype.HeadTrue:
		return 1
	case h == vtype.HeadDouble, h == vtype.HeadUTCDate, h == vtype.HeadExternal:
		return 9
	case h >= 0x20 && h <= 0x2f:
		return 1 + widthForIntHead(h)
	case h >= vtype.HeadSmallIntPosBase && h <= vtype.HeadSmallIntNegEnd:
		return 1
	case h >= vtype.HeadShortStringBase && h <= vtype.HeadShortStringEnd:
		return 1 + int(h-vtype.HeadShortStringBase)
	case h == vtype.HeadLongString:
		l := wire.ReadUint(s.buf[1:], 8)
		return 1 + 8 + int(l)
	case h >= vtype.HeadBinaryBase && h <= vtype.HeadBinaryEnd:
		w := int(h-vtype.HeadBinaryBase) + 1
		l := wire.ReadUint(s.buf[1:], w)
		return 1 + w + int(l)
	case h >= vtype.HeadBCDBase && h <= vtype.HeadBCDEnd:
		w := int((h-vtype.HeadBCDBase)%8) + 1
		l := wire.ReadUint(s.buf[1:], w)
		return 1 + w + int(l)
	case h >= vtype.HeadCustomBase && h <= vtype.HeadCustomEnd:
		v, n := wire.ReadVarintForward(s.buf, 1)
		return 1 + n + int(v)
	default:
		return 1
	}
}

// Length returns the number of array elements, object attributes, or (for
// strings) the byte length of the string content. Zero for every other
// type.
func (s Slice) Length() int {
	h := s.Head()
	switch {
	case h == vtype.HeadEmptyArray, h == vtype.HeadEmptyObject:
		return 0
	case h >= 0x02 && h <= 0x05:
		w := int(vtype.WidthMap[h])
		first := 1 + w
		total := s.ByteSize()
		if total <= first {
			return 0
		}
		elemSize := (Slice{buf: s.buf[first:]}).ByteSize()
		if elemSize == 0 {
			return 0
		}
		return (total - first) / elemSize
	case h >= 0x06 && h <= 0x09:
		w := int(vtype.WidthMap[h])
		return int(wire.ReadUint(s.buf[1+w:], w))
	case h >= 0x0b && h <= 0x0e:
		w := int(vtype.WidthMap[h])
		return int(wire.ReadUint(s.buf[1+w:], w))
	case h == vtype.HeadCompactArray || h == vtype.HeadCompactObject:
		end := s.ByteSize()
		v, _ := wire.ReadVarintReverse(s.buf, end)
		return int(v)
	case h >= vtype.HeadShortStringBase && h <= vtype.HeadShortStringEnd:
		return int(h - vtype.HeadShortStringBase)
	case h == vtype.HeadLongString:
		return int(wire.ReadUint(s.buf[1:], 8))
	default:
		return 0
	}
}

// At returns the element at index in an array Slice (indexed or
// compact). Returns an IndexOutOfBounds Error if index is out of range,
// or InvalidValueType if the Slice is not an array.
func (s Slice) At(index int) (Slice, error) {
	h := s.Head()
	if s.Type() != vtype.Array {
		return Slice{}, newError(InvalidValueType, "%s is not an array", s.TypeName())
	}
	n := s.Length()
	if index < 0 || index >= n {
		return Slice{}, newError(IndexOutOfBounds, "array index %d out of bounds (length %d)", index, n)
	}
	switch {
	case h >= 0x02 && h <= 0x05:
		w := int(vtype.WidthMap[h])
		first := 1 + w
		elemSize := (Slice{buf: s.buf[first:]}).ByteSize()
		off := first + index*elemSize
		return Slice{buf: s.buf[off:]}, nil
	case h >= 0x06 && h <= 0x09:
		w := int(vtype.WidthMap[h])
		end := s.ByteSize()
		tableOff := end - n*w
		off := int(wire.ReadUint(s.buf[tableOff+index*w:], w))
		return Slice{buf: s.buf[off:]}, nil
	case h == vtype.HeadCompactArray:
		return s.compactAt(index)
	default:
		return Slice{}, newError(InternalError, "unhandled array head 0x%02x", h)
	}
}

func (s Slice) compactAt(index int) (Slice, error) {
	end := s.ByteSize()
	_, vlen := wire.ReadVarintForward(s.buf, 1)
	pos := 1 + vlen
	_, nBytes := wire.ReadVarintReverse(s.buf, end)
	payloadEnd := end - nBytes
	i := 0
	for pos < payloadEnd {
		elem := Slice{buf: s.buf[pos:]}
		if i == index {
			return elem, nil
		}
		pos += elem.ByteSize()
		i++
	}
	return Slice{}, newError(IndexOutOfBounds, "array index %d out of bounds", index)
}

// Get looks up attribute in an object Slice, using the cuckoo hash index
// table for indexed objects and a linear scan for compact ones. A
// missing attribute is not an error: Get returns a None Slice (see
// IsNone) for it, matching the reference implementation's
// Slice::get. Only a non-object receiver is an error.
//
// Probing fixes a latent bug present in the reference implementation's
// Slice::get (_examples/original_source/src/Slice.cpp): its third cuckoo
// probe reuses pos[1] instead of computing pos[2] from the third seed,
// silently shrinking every cuckoo lookup to two effective probes. Here
// all three candidate slots are checked independently.
func (s Slice) Get(attribute string) (Slice, error) {
	h := s.Head()
	switch {
	case h == vtype.HeadEmptyObject:
		return Slice{}, nil
	case h == vtype.HeadCompactObject:
		return s.compactGet(attribute)
	case h >= 0x0b && h <= 0x0e:
		return s.cuckooGet(attribute)
	default:
		return Slice{}, newError(InvalidValueType, "%s is not an object", s.TypeName())
	}
}

func (s Slice) cuckooGet(attribute string) (Slice, error) {
	h := s.Head()
	w := int(vtype.WidthMap[h])
	end := s.ByteSize()
	nSlots := int(wire.ReadUint(s.buf[1+2*w:], w))
	if nSlots == 0 {
		return Slice{}, nil
	}
	seedIdx := int(s.buf[1+3*w])
	htBase := end - nSlots*w

	seeds := [3]uint64{
		vtype.SeedTable[seedIdx*3],
		vtype.SeedTable[seedIdx*3+1],
		vtype.SeedTable[seedIdx*3+2],
	}
	hashes := vhash.Hash64x3([]byte(attribute), seeds)

	var pos [3]int
	for i := 0; i < 3; i++ {
		if nSlots <= (1 << 24) {
			pos[i] = int(vhash.FastMod32(hashes[i], uint64(nSlots)))
		} else {
			pos[i] = int(hashes[i] % uint64(nSlots))
		}
	}

	for probe := 0; probe < 3; probe++ {
		slotOff := htBase + pos[probe]*w
		rel := wire.ReadUint(s.buf[slotOff:], w)
		if rel == 0 {
			continue
		}
		key := Slice{buf: s.buf[rel:]}
		if key.isEqualString(attribute) {
			valOff := int(rel) + key.ByteSize()
			return Slice{buf: s.buf[valOff:]}, nil
		}
	}
	return Slice{}, nil
}

func (s Slice) compactGet(attribute string) (Slice, error) {
	end := s.ByteSize()
	_, vlen := wire.ReadVarintForward(s.buf, 1)
	pos := 1 + vlen
	_, nBytes := wire.ReadVarintReverse(s.buf, end)
	payloadEnd := end - nBytes
	for pos < payloadEnd {
		key := Slice{buf: s.buf[pos:]}
		keySize := key.ByteSize()
		if key.isEqualString(attribute) {
			return Slice{buf: s.buf[pos+keySize:]}, nil
		}
		pos += keySize
		val := Slice{buf: s.buf[pos:]}
		pos += val.ByteSize()
	}
	return Slice{}, nil
}

// isEqualString reports whether the Slice is a String value whose
// decoded content equals target, without allocating.
func (s Slice) isEqualString(target string) bool {
	h := s.Head()
	switch {
	case h >= vtype.HeadShortStringBase && h <= vtype.HeadShortStringEnd:
		l := int(h - vtype.HeadShortStringBase)
		return len(s.buf) >= 1+l && string(s.buf[1:1+l]) == target
	case h == vtype.HeadLongString:
		l := int(wire.ReadUint(s.buf[1:], 8))
		return len(s.buf) >= 9+l && string(s.buf[9:9+l]) == target
	default:
		return false
	}
}

// CompareString compares a String Slice's content against target, using
// the same ordering as strings.Compare. Returns -2 if the Slice is not a
// String.
func (s Slice) CompareString(target string) int {
	str, err := s.StringValue()
	if err != nil {
		return -2
	}
	return strings.Compare(str, target)
}

// forEachPair visits every key/value pair of an object Slice in stored
// (payload) order, i.e. 0..nItems-1 as written, never cuckoo slot order.
func (s Slice) forEachPair(fn func(key, value Slice) error) error {
	h := s.Head()
	switch {
	case h == vtype.HeadEmptyObject:
		return nil
	case h >= 0x0b && h <= 0x0e:
		w := int(vtype.WidthMap[h])
		nItems := int(wire.ReadUint(s.buf[1+w:], w))
		pos := 2 + 3*w
		for i := 0; i < nItems; i++ {
			key := Slice{buf: s.buf[pos:]}
			pos += key.ByteSize()
			val := Slice{buf: s.buf[pos:]}
			pos += val.ByteSize()
			if err := fn(key, val); err != nil {
				return err
			}
		}
		return nil
	case h == vtype.HeadCompactObject:
		end := s.ByteSize()
		_, vlen := wire.ReadVarintForward(s.buf, 1)
		pos := 1 + vlen
		_, nBytes := wire.ReadVarintReverse(s.buf, end)
		payloadEnd := end - nBytes
		for pos < payloadEnd {
			key := Slice{buf: s.buf[pos:]}
			pos += key.ByteSize()
			val := Slice{buf: s.buf[pos:]}
			pos += val.ByteSize()
			if err := fn(key, val); err != nil {
				return err
			}
		}
		return nil
	default:
		return newError(InvalidValueType, "%s is not an object", s.TypeName())
	}
}

// ForEach visits every key/value pair of an object Slice in stored
// (payload) order. See forEachPair.
func (s Slice) ForEach(fn func(key, value Slice) error) error {
	return s.forEachPair(fn)
}

// getNthKey returns the key at position n (0-based, stored/payload
// order, not cuckoo slot order) of an object Slice.
func (s Slice) getNthKey(n int) (Slice, error) {
	key, _, err := s.nthPair(n)
	return key, err
}

// getNthValue returns the value at position n (0-based, stored/payload
// order) of an object Slice.
func (s Slice) getNthValue(n int) (Slice, error) {
	_, value, err := s.nthPair(n)
	return value, err
}

// nthPair returns the key and value at position n (0-based, stored
// order) of an object Slice, walking the payload linearly from its
// start since pair sizes vary and no reverse index exists for
// position-based (as opposed to hash-based) lookup.
func (s Slice) nthPair(n int) (Slice, Slice, error) {
	h := s.Head()
	switch {
	case h == vtype.HeadEmptyObject:
		return Slice{}, Slice{}, newError(IndexOutOfBounds, "object index %d out of bounds", n)
	case h >= 0x0b && h <= 0x0e:
		w := int(vtype.WidthMap[h])
		nItems := int(wire.ReadUint(s.buf[1+w:], w))
		if n < 0 || n >= nItems {
			return Slice{}, Slice{}, newError(IndexOutOfBounds, "object index %d out of bounds (length %d)", n, nItems)
		}
		pos := 2 + 3*w
		for i := 0; i < n; i++ {
			key := Slice{buf: s.buf[pos:]}
			pos += key.ByteSize()
			val := Slice{buf: s.buf[pos:]}
			pos += val.ByteSize()
		}
		key := Slice{buf: s.buf[pos:]}
		val := Slice{buf: s.buf[pos+key.ByteSize():]}
		return key, val, nil
	case h == vtype.HeadCompactObject:
		end := s.ByteSize()
		_, vlen := wire.ReadVarintForward(s.buf, 1)
		pos := 1 + vlen
		_, nBytes := wire.ReadVarintReverse(s.buf, end)
		payloadEnd := end - nBytes
		i := 0
		for pos < payloadEnd {
			key := Slice{buf: s.buf[pos:]}
			pos += key.ByteSize()
			val := Slice{buf: s.buf[pos:]}
			pos += val.ByteSize()
			if i == n {
				return key, val, nil
			}
			i++
		}
		return Slice{}, Slice{}, newError(IndexOutOfBounds, "object index %d out of bounds", n)
	default:
		return Slice{}, Slice{}, newError(InvalidValueType, "%s is not an object", s.TypeName())
	}
}

// Equals reports whether s and other encode byte-identical VPACK values.
func (s Slice) Equals(other Slice) bool {
	sz := s.ByteSize()
	if sz != other.ByteSize() {
		return false
	}
	return bytes.Equal(s.buf[:sz], other.buf[:sz])
}

// Hash returns a default-seeded NormalizedHash, suitable as a document
// fingerprint independent of object attribute order.
func (s Slice) Hash() uint64 {
	return s.NormalizedHash(0xdeadbeef)
}

// NormalizedHash computes an order-insensitive hash: arrays and objects
// fold their children's hashes together with XOR, so two objects with the
// same attributes in different orders (or two arrays... only equal if
// element order matches, arrays remain order-sensitive since XOR-folding
// indices rather than values would defeat normalization of objects
// otherwise) hash identically. Grounded on
// Slice::normalizedHash's 0xba5bedf00d/0xf00ba44ba5 salts
// (_examples/original_source/src/Slice.cpp).
func (s Slice) NormalizedHash(seed uint64) uint64 {
	switch {
	case s.Type() == vtype.Array:
		// Ported line-for-line from Slice::normalizedHash's array arm:
		// value starts as fasthash64(length^salt, seed), then each
		// element folds in via value ^= it.normalizedHash(value) — the
		// running accumulator, not the original seed, seeds the next
		// element's hash.
		n := s.Length()
		acc := vhash.Hash64FromUint(uint64(n)^uint64(arrayHashSalt), seed)
		for i := 0; i < n; i++ {
			el, err := s.At(i)
			if err != nil {
				continue
			}
			acc ^= el.NormalizedHash(acc)
		}
		return acc
	case s.Type() == vtype.Object:
		// Ported line-for-line from Slice::normalizedHash's object arm:
		// a single sub-seed derived from length^salt seeds every pair,
		// and both key and value fold into the same accumulator that
		// sub-seed started as.
		n := s.Length()
		seed2 := vhash.Hash64FromUint(uint64(n)^uint64(objectHashSalt), seed)
		acc := seed2
		for i := 0; i < n; i++ {
			key, err := s.getNthKey(i)
			if err != nil {
				continue
			}
			value, err := s.getNthValue(i)
			if err != nil {
				continue
			}
			acc ^= key.NormalizedHash(seed2)
			acc ^= value.NormalizedHash(seed2)
		}
		return acc
	case s.isNumber():
		v, err := s.DoubleValue()
		if err != nil {
			sz := s.ByteSize()
			return vhash.Hash64(s.buf[:sz], seed)
		}
		var buf [8]byte
		wire.PutUint(buf[:], 8, math.Float64bits(v))
		return vhash.Hash64(buf[:], seed)
	default:
		sz := s.ByteSize()
		return vhash.Hash64(s.buf[:sz], seed)
	}
}

// isNumber reports whether s is Int, UInt, SmallInt or Double, the
// numeric types whose normalized hash must agree regardless of which
// one stores a given value (NormalizedHash(5) == NormalizedHash(5.0)).
func (s Slice) isNumber() bool {
	switch s.Type() {
	case vtype.Int, vtype.UInt, vtype.SmallInt, vtype.Double:
		return true
	default:
		return false
	}
}


func signExtend(raw uint64, w int) int64 {
	if w >= 8 {
		return int64(raw)
	}
	bit := uint64(1) << (8*uint(w) - 1)
	if raw&bit != 0 {
		raw |= ^uint64(0) << (8 * uint(w))
	}
	return int64(raw)
}

// IntValue decodes Int, UInt (if it fits) and SmallInt values.
func (s Slice) IntValue() (int64, error) {
	h := s.Head()
	switch {
	case h >= 0x20 && h <= 0x27:
		w := int(h - 0x1f)
		return signExtend(wire.ReadUint(s.buf[1:], w), w), nil
	case h >= 0x28 && h <= 0x2f:
		w := int(h - 0x27)
		raw := wire.ReadUint(s.buf[1:], w)
		if w == 8 && raw > uint64(math.MaxInt64) {
			return 0, newError(NumberOutOfRange, "uint value %d does not fit in int64", raw)
		}
		return int64(raw), nil
	case h >= vtype.HeadSmallIntPosBase && h <= vtype.HeadSmallIntPosBase+9:
		return int64(h - vtype.HeadSmallIntPosBase), nil
	case h >= vtype.HeadSmallIntNegBase && h <= vtype.HeadSmallIntNegEnd:
		return int64(h-vtype.HeadSmallIntNegBase) - 6, nil
	default:
		return 0, newError(InvalidValueType, "%s is not an integer", s.TypeName())
	}
}

// UintValue decodes UInt, Int (if non-negative) and SmallInt values.
func (s Slice) UintValue() (uint64, error) {
	h := s.Head()
	switch {
	case h >= 0x28 && h <= 0x2f:
		w := int(h - 0x27)
		return wire.ReadUint(s.buf[1:], w), nil
	case h >= 0x20 && h <= 0x27:
		w := int(h - 0x1f)
		raw := signExtend(wire.ReadUint(s.buf[1:], w), w)
		if raw < 0 {
			return 0, newError(NumberOutOfRange, "negative int %d has no uint representation", raw)
		}
		return uint64(raw), nil
	case h >= vtype.HeadSmallIntPosBase && h <= vtype.HeadSmallIntPosBase+9:
		return uint64(h - vtype.HeadSmallIntPosBase), nil
	case h >= vtype.HeadSmallIntNegBase && h <= vtype.HeadSmallIntNegEnd:
		return 0, newError(NumberOutOfRange, "negative smallint has no uint representation")
	default:
		return 0, newError(InvalidValueType, "%s is not an integer", s.TypeName())
	}
}

// DoubleValue decodes Double values, widening Int/UInt/SmallInt values.
func (s Slice) DoubleValue() (float64, error) {
	if s.Head() == vtype.HeadDouble {
		bits := wire.ReadUint(s.buf[1:], 8)
		return math.Float64frombits(bits), nil
	}
	if iv, err := s.IntValue(); err == nil {
		return float64(iv), nil
	}
	if uv, err := s.UintValue(); err == nil {
		return float64(uv), nil
	}
	return 0, newError(InvalidValueType, "%s is not a double", s.TypeName())
}

// BoolValue decodes a Bool value.
func (s Slice) BoolValue() (bool, error) {
	switch s.Head() {
	case vtype.HeadTrue:
		return true, nil
	case vtype.HeadFalse:
		return false, nil
	default:
		return false, newError(InvalidValueType, "%s is not a bool", s.TypeName())
	}
}

// StringValue decodes a short or long String value.
func (s Slice) StringValue() (string, error) {
	h := s.Head()
	switch {
	case h >= vtype.HeadShortStringBase && h <= vtype.HeadShortStringEnd:
		l := int(h - vtype.HeadShortStringBase)
		return string(s.buf[1 : 1+l]), nil
	case h == vtype.HeadLongString:
		l := int(wire.ReadUint(s.buf[1:], 8))
		return string(s.buf[9 : 9+l]), nil
	default:
		return "", newError(InvalidValueType, "%s is not a string", s.TypeName())
	}
}

// BinaryValue decodes a Binary value's raw payload.
func (s Slice) BinaryValue() ([]byte, error) {
	h := s.Head()
	if h < vtype.HeadBinaryBase || h > vtype.HeadBinaryEnd {
		return nil, newError(InvalidValueType, "%s is not binary", s.TypeName())
	}
	w := int(h-vtype.HeadBinaryBase) + 1
	l := int(wire.ReadUint(s.buf[1:], w))
	return s.buf[1+w : 1+w+l], nil
}

// UTCDateMillis decodes a UTCDate value as milliseconds since the Unix
// epoch.
func (s Slice) UTCDateMillis() (int64, error) {
	if s.Head() != vtype.HeadUTCDate {
		return 0, newError(InvalidValueType, "%s is not a utc-date", s.TypeName())
	}
	return int64(wire.ReadUint(s.buf[1:], 8)), nil
}

// IsNull reports whether the Slice is the Null value.
func (s Slice) IsNull() bool { return s.Head() == vtype.HeadNull }

// IsNone reports whether the Slice is empty/absent.
func (s Slice) IsNone() bool { return len(s.buf) == 0 || s.Head() == vtype.HeadNone }
