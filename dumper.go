package vpack

import (
	"strconv"

	"github.com/vpackdb/vpack/internal/vtype"
)

// Dumper streams a VPACK Slice out as JSON text into a Sink. Grounded on
// biggeezerdevelopment/simdjson-go's encoder.go: the same
// strconv.AppendFloat(..., 'g', -1, 64) float formatting and
// character-class string escaping, adapted to read from a Slice instead
// of reflecting over a Go value, and to honor UnsupportedTypeBehavior
// for the VPACK types JSON has no native equivalent for (Binary, BCD,
// UTCDate, External, MinKey, MaxKey, Custom).
type Dumper struct {
	sink    Sink
	opts    *Options
	depth   int
	scratch []byte
}

// NewDumper returns a Dumper writing to sink under opts. A nil opts uses
// DefaultOptions.
func NewDumper(sink Sink, opts *Options) *Dumper {
	if opts == nil {
		opts = defaultOptions
	}
	return &Dumper{sink: sink, opts: opts, scratch: make([]byte, 0, 32)}
}

// Dump writes s to the Dumper's Sink as JSON.
func (d *Dumper) Dump(s Slice) error {
	return d.dump(s)
}

func (d *Dumper) newline() {
	if !d.opts.PrettyPrint {
		return
	}
	d.sink.PushBack('\n')
	for i := 0; i < d.depth; i++ {
		d.sink.Append([]byte("  "))
	}
}

func (d *Dumper) dump(s Slice) error {
	switch s.Type() {
	case vtype.None, vtype.Illegal:
		return newError(InvalidValueType, "cannot dump a %s value", s.TypeName())
	case vtype.Null:
		d.sink.Append([]byte("null"))
		return nil
	case vtype.Bool:
		v, _ := s.BoolValue()
		if v {
			d.sink.Append([]byte("true"))
		} else {
			d.sink.Append([]byte("false"))
		}
		return nil
	case vtype.Double:
		v, _ := s.DoubleValue()
		d.appendFloat(v)
		return nil
	case vtype.Int, vtype.SmallInt:
		v, err := s.IntValue()
		if err != nil {
			return err
		}
		d.scratch = strconv.AppendInt(d.scratch[:0], v, 10)
		d.sink.Append(d.scratch)
		return nil
	case vtype.UInt:
		v, err := s.UintValue()
		if err != nil {
			return err
		}
		d.scratch = strconv.AppendUint(d.scratch[:0], v, 10)
		d.sink.Append(d.scratch)
		return nil
	case vtype.String:
		str, err := s.StringValue()
		if err != nil {
			return err
		}
		return d.appendQuotedString(str)
	case vtype.Array:
		return d.dumpArray(s)
	case vtype.Object:
		return d.dumpObject(s)
	default:
		return d.dumpUnsupported(s)
	}
}

func (d *Dumper) dumpArray(s Slice) error {
	n := s.Length()
	d.sink.PushBack('[')
	d.depth++
	for i := 0; i < n; i++ {
		if i > 0 {
			d.sink.PushBack(',')
		}
		d.newline()
		el, err := s.At(i)
		if err != nil {
			return err
		}
		if err := d.dump(el); err != nil {
			return err
		}
	}
	d.depth--
	if n > 0 {
		d.newline()
	}
	d.sink.PushBack(']')
	return nil
}

func (d *Dumper) dumpObject(s Slice) error {
	d.sink.PushBack('{')
	d.depth++
	first := true
	err := s.forEachPair(func(key, value Slice) error {
		if d.opts.AttributeExcludeHandler != nil && d.opts.AttributeExcludeHandler.ShouldExclude(key, d.depth) {
			return nil
		}
		if !first {
			d.sink.PushBack(',')
		}
		first = false
		d.newline()
		keyName, kerr := d.resolveKeyName(key)
		if kerr != nil {
			return kerr
		}
		if err := d.appendQuotedString(keyName); err != nil {
			return err
		}
		d.sink.PushBack(':')
		if d.opts.PrettyPrint {
			d.sink.PushBack(' ')
		}
		return d.dump(value)
	})
	d.depth--
	if err != nil {
		return err
	}
	if !first {
		d.newline()
	}
	d.sink.PushBack('}')
	return nil
}

func (d *Dumper) resolveKeyName(key Slice) (string, error) {
	if str, err := key.StringValue(); err == nil {
		return str, nil
	}
	id, err := key.UintValue()
	if err != nil {
		return "", newError(InvalidValueType, "object key is neither a string nor an integer")
	}
	if d.opts.AttributeTranslator == nil {
		return "", newError(NeedAttributeTranslator, "attribute id %d requires an AttributeTranslator", id)
	}
	name := d.opts.AttributeTranslator.TranslateID(id)
	if name == nil {
		return "", newError(NeedAttributeTranslator, "no translation for attribute id %d", id)
	}
	return string(name), nil
}

func (d *Dumper) dumpUnsupported(s Slice) error {
	switch d.opts.UnsupportedTypeBehavior {
	case NullifyUnsupportedType:
		d.sink.Append([]byte("null"))
		return nil
	case ConvertUnsupportedType:
		return d.appendQuotedString("(non-representable type " + s.TypeName() + ")")
	default:
		return newError(NoJsonEquivalent, "%s has no JSON equivalent", s.TypeName())
	}
}

func (d *Dumper) appendFloat(v float64) {
	d.scratch = strconv.AppendFloat(d.scratch[:0], v, 'g', -1, 64)
	d.sink.Append(d.scratch)
}

const hexDigits = "0123456789abcdef"

func (d *Dumper) appendQuotedString(s string) error {
	d.sink.PushBack('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			d.sink.Append([]byte(`\"`))
		case c == '\\':
			d.sink.Append([]byte(`\\`))
		case c == '/' && d.opts.EscapeForwardSlashes:
			d.sink.Append([]byte(`\/`))
		case c == '\b':
			d.sink.Append([]byte(`\b`))
		case c == '\f':
			d.sink.Append([]byte(`\f`))
		case c == '\n':
			d.sink.Append([]byte(`\n`))
		case c == '\r':
			d.sink.Append([]byte(`\r`))
		case c == '\t':
			d.sink.Append([]byte(`\t`))
		case c < 0x20:
			d.sink.Append([]byte{'\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf]})
		default:
			d.sink.PushBack(c)
		}
	}
	d.sink.PushBack('"')
	return nil
}

// DumpString is a convenience wrapper that dumps s to a freshly allocated
// string.
func DumpString(s Slice, opts *Options) (string, error) {
	sink := NewByteSink(64)
	if err := NewDumper(sink, opts).Dump(s); err != nil {
		return "", err
	}
	return sink.String(), nil
}
