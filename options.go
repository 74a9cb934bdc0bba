package vpack

// AttributeTranslator maps between textual attribute names and small
// integer ids used to compact object keys on the wire. Implementations
// must be bidirectional: a name translated to an id must translate back
// to bytes that compare equal to the original name.
type AttributeTranslator interface {
	// TranslateName returns the VPACK-encoded key (an UInt or SmallInt
	// head plus payload) for name, or nil if name has no translation.
	TranslateName(name []byte) []byte

	// TranslateID returns the attribute name for a given integer id, or
	// nil if id has no registered name.
	TranslateID(id uint64) []byte
}

// AttributeExcludeHandler decides whether a just-parsed object key/value
// pair should be dropped from the built document. nestingDepth is the
// object/array nesting level of the object holding the pair, counting
// the outermost container as 1.
type AttributeExcludeHandler interface {
	ShouldExclude(key Slice, nestingDepth int) bool
}

// UnsupportedTypeBehavior controls how the Dumper handles VPACK types
// that have no JSON equivalent (Binary, BCD, UTCDate, External, MinKey,
// MaxKey, Custom).
type UnsupportedTypeBehavior int

const (
	// FailOnUnsupportedType returns a NoJsonEquivalent error.
	FailOnUnsupportedType UnsupportedTypeBehavior = iota
	// NullifyUnsupportedType emits a JSON null.
	NullifyUnsupportedType
	// ConvertUnsupportedType emits a descriptive string literal.
	ConvertUnsupportedType
)

// Options configures parsing and dumping behavior. The zero value is not
// generally useful for parsing because SortAttributeNames defaults to
// true in the reference implementation; use DefaultOptions() instead.
type Options struct {
	// ValidateUTF8Strings enforces UTF-8 correctness while parsing JSON
	// strings.
	ValidateUTF8Strings bool

	// CheckAttributeUniqueness rejects duplicate object keys at parse
	// or build time.
	CheckAttributeUniqueness bool

	// SortAttributeNames orders object entries lexicographically before
	// cuckoo-table construction. Does not affect lookup correctness,
	// only on-wire entry order and hence round-trip key order.
	SortAttributeNames bool

	// EscapeForwardSlashes escapes '/' as "\/" when dumping to JSON.
	EscapeForwardSlashes bool

	// PrettyPrint indents dumped JSON output.
	PrettyPrint bool

	// KeepTopLevelOpen, when the top-level value is an array or object,
	// makes Parse skip writing that container's closing head byte: the
	// Parser's Builder (see Parser.Builder) is left open for further
	// Add*/Close calls instead of producing a finished Slice. See
	// Parse's doc comment for the exact contract.
	KeepTopLevelOpen bool

	// UnsupportedTypeBehavior controls Dumper behavior for VPACK types
	// with no JSON equivalent.
	UnsupportedTypeBehavior UnsupportedTypeBehavior

	// AttributeTranslator, if set, allows integer-keyed objects to be
	// read back as named attributes and lets the parser rewrite string
	// keys into compact integer ids.
	AttributeTranslator AttributeTranslator

	// AttributeExcludeHandler, if set, lets the parser drop selected
	// key/value pairs while building objects.
	AttributeExcludeHandler AttributeExcludeHandler

	// VJSONExtension enables the "s:"/"b:"/"d:" string-prefix convention
	// (VJsonParser in the reference implementation) for forcing a JSON
	// string literal to parse as an explicit String, base64-decoded
	// Binary, or UTCDate instead of a plain String.
	VJSONExtension bool
}

// DefaultOptions returns the reference default configuration:
// attribute names sorted, no UTF-8 validation, no uniqueness check.
func DefaultOptions() *Options {
	return &Options{
		SortAttributeNames:      true,
		UnsupportedTypeBehavior: FailOnUnsupportedType,
	}
}

var defaultOptions = DefaultOptions()
