// Package vtype holds the compile-time constant tables that give every
// VPACK head byte its meaning: value type, length-field width, and (for
// objects) the cuckoo seed row. TypeMap and WidthMap are transcribed
// verbatim from ArangoDB VelocyPack's Slice::TypeMap and Slice::WidthMap
// (see _examples/original_source/src/Slice.cpp) because the wire format
// treats them as part of the on-disk contract, not an implementation
// detail open to rediscovery. Slice::FirstSubMap is deliberately not
// carried over: its own entries disagree with each other about where a
// cuckoo object's payload starts for wide length fields, and this
// package's container layout (documented in DESIGN.md) resolves that
// ambiguity by computing the payload offset directly from the head's
// width instead of a lookup table, so callers use that arithmetic
// (1+w, 2+3w, etc.) inline rather than a FirstSubMap entry.
package vtype

// ValueType is the closed enumeration of VPACK value kinds.
type ValueType int

const (
	None ValueType = iota
	Illegal
	Null
	Bool
	Array
	Object
	Double
	UTCDate
	External
	MinKey
	MaxKey
	Int
	UInt
	SmallInt
	String
	Binary
	BCD
	Custom
)

func (t ValueType) String() string {
	switch t {
	case None:
		return "none"
	case Illegal:
		return "illegal"
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Object:
		return "object"
	case Double:
		return "double"
	case UTCDate:
		return "utc-date"
	case External:
		return "external"
	case MinKey:
		return "min-key"
	case MaxKey:
		return "max-key"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case SmallInt:
		return "smallint"
	case String:
		return "string"
	case Binary:
		return "binary"
	case BCD:
		return "bcd"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Head byte boundaries called out by name where the codec branches on them
// repeatedly. Ranges not named here are tested directly against the
// literal head-byte taxonomy.
const (
	HeadNone             = 0x00
	HeadEmptyArray       = 0x01
	HeadArrayNoIndex1    = 0x02
	HeadArrayNoIndex8    = 0x05
	HeadArrayIndexed1    = 0x06
	HeadArrayIndexed8    = 0x09
	HeadEmptyObject      = 0x0a
	HeadObjectIndexed1   = 0x0b
	HeadObjectIndexed8   = 0x0e
	HeadCompactArray     = 0x13
	HeadCompactObject    = 0x14
	HeadIllegal          = 0x17
	HeadNull             = 0x18
	HeadFalse            = 0x19
	HeadTrue             = 0x1a
	HeadDouble           = 0x1b
	HeadUTCDate          = 0x1c
	HeadExternal         = 0x1d
	HeadMinKey           = 0x1e
	HeadMaxKey           = 0x1f
	HeadIntBase          = 0x1f // Int width = head - HeadIntBase, for head in 0x20..0x27
	HeadUIntBase         = 0x27 // UInt width = head - HeadUIntBase, for head in 0x28..0x2f
	HeadSmallIntPosBase  = 0x30 // 0x30..0x39 -> value head-0x30 (0..9)
	HeadSmallIntNegBase  = 0x3a // 0x3a..0x3f -> value head-0x3a-6 (-6..-1)
	HeadSmallIntNegEnd   = 0x3f
	HeadShortStringBase  = 0x40 // 0x40..0xbe, inline length = head-0x40
	HeadShortStringEnd   = 0xbe
	HeadLongString       = 0xbf
	HeadBinaryBase       = 0xc0 // 0xc0..0xc7, width = head-0xbf
	HeadBinaryEnd        = 0xc7
	HeadBCDBase          = 0xc8
	HeadBCDEnd           = 0xd7
	HeadCustomBase       = 0xf0
	HeadCustomEnd        = 0xff
)

// TypeMap maps every possible head byte to its ValueType.
var TypeMap = buildTypeMap()

// WidthMap maps the low 5 bits of a container head (index 0x00..0x0e) to
// the width, in bytes, of its length/offset fields. Index 0x0f is unused
// padding mirroring the reference table's 32-entry shape.
var WidthMap = [32]uint{
	0, // 0x00 None
	1, // 0x01 empty array
	1, // 0x02 array without index table
	2, // 0x03 array without index table
	4, // 0x04 array without index table
	8, // 0x05 array without index table
	1, // 0x06 array with index table
	2, // 0x07 array with index table
	4, // 0x08 array with index table
	8, // 0x09 array with index table
	1, // 0x0a empty object
	1, // 0x0b object with cuckoo index
	2, // 0x0c object with cuckoo index
	4, // 0x0d object with cuckoo index
	8, // 0x0e object with cuckoo index
	0,
}

func buildTypeMap() [256]ValueType {
	var t [256]ValueType
	t[0x00] = None
	t[0x01] = Array
	for h := 0x02; h <= 0x09; h++ {
		t[h] = Array
	}
	t[0x0a] = Object
	for h := 0x0b; h <= 0x0e; h++ {
		t[h] = Object
	}
	for h := 0x0f; h <= 0x12; h++ {
		t[h] = None
	}
	t[0x13] = Array
	t[0x14] = Object
	t[0x15] = None
	t[0x16] = None
	t[0x17] = Illegal
	t[0x18] = Null
	t[0x19] = Bool
	t[0x1a] = Bool
	t[0x1b] = Double
	t[0x1c] = UTCDate
	t[0x1d] = External
	t[0x1e] = MinKey
	t[0x1f] = MaxKey
	for h := 0x20; h <= 0x27; h++ {
		t[h] = Int
	}
	for h := 0x28; h <= 0x2f; h++ {
		t[h] = UInt
	}
	for h := 0x30; h <= 0x3f; h++ {
		t[h] = SmallInt
	}
	for h := 0x40; h <= 0xbf; h++ {
		t[h] = String
	}
	for h := 0xc0; h <= 0xc7; h++ {
		t[h] = Binary
	}
	for h := 0xc8; h <= 0xd7; h++ {
		t[h] = BCD
	}
	for h := 0xd8; h <= 0xef; h++ {
		t[h] = None
	}
	for h := 0xf0; h <= 0xff; h++ {
		t[h] = Custom
	}
	return t
}
