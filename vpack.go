// Package vpack implements a self-describing, traversable-without-prior-
// deserialization binary value format (head byte taxonomy, cuckoo-indexed
// objects, offset-indexed and compact arrays) together with a JSON parser
// and dumper built on top of it.
//
// Grounded on biggeezerdevelopment/simdjson-go for the package-level
// pooling conventions (Marshal/Unmarshal wrapping a pooled worker, a
// streaming Decoder/Encoder pair over io.Reader/io.Writer) and on
// ArangoDB VelocyPack (_examples/original_source) for the wire format
// and traversal semantics themselves.
package vpack

import (
	"io"
	"sync"

	"github.com/vpackdb/vpack/internal/simdtext"
)

var parserPool = sync.Pool{
	New: func() interface{} {
		return NewParser(defaultOptions)
	},
}

// Marshal parses JSON data under DefaultOptions and returns the
// resulting VPACK encoding.
func Marshal(data []byte) ([]byte, error) {
	return MarshalOptions(data, defaultOptions)
}

// MarshalOptions parses JSON data under opts and returns the resulting
// VPACK encoding. A nil opts uses DefaultOptions.
func MarshalOptions(data []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = defaultOptions
	}
	if opts == defaultOptions {
		p := parserPool.Get().(*Parser)
		defer parserPool.Put(p)
		s, err := p.Parse(data)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(s.Bytes()))
		copy(out, s.Bytes())
		return out, nil
	}
	s, err := NewParser(opts).Parse(data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(s.Bytes()))
	copy(out, s.Bytes())
	return out, nil
}

// Unmarshal dumps VPACK-encoded data as JSON text under DefaultOptions.
func Unmarshal(data []byte) ([]byte, error) {
	return UnmarshalOptions(data, defaultOptions)
}

// UnmarshalOptions dumps VPACK-encoded data as JSON text under opts. A
// nil opts uses DefaultOptions.
func UnmarshalOptions(data []byte, opts *Options) ([]byte, error) {
	s := FromBytes(data)
	sink := NewByteSink(len(data) * 2)
	if err := NewDumper(sink, opts).Dump(s); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// Decoder reads a stream of concatenated JSON values from an io.Reader,
// one Decode call per value, and parses each into a VPACK Slice.
type Decoder struct {
	r      io.Reader
	opts   *Options
	buf    []byte
	cursor int
	p      *Parser
	scope  *SliceScope
}

// NewDecoder returns a Decoder reading from r under DefaultOptions.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderOptions(r, defaultOptions)
}

// NewDecoderOptions returns a Decoder reading from r under opts. A nil
// opts uses DefaultOptions.
func NewDecoderOptions(r io.Reader, opts *Options) *Decoder {
	if opts == nil {
		opts = defaultOptions
	}
	return &Decoder{r: r, opts: opts, p: NewParser(opts), scope: NewSliceScope()}
}

// Decode reads the next JSON value off the underlying reader and
// returns it as a Slice. It may be called repeatedly to walk a stream
// of concatenated top-level values (as produced by, for example, an
// NDJSON feed); it returns io.EOF once only trailing whitespace
// remains. Every Decode call reuses the Decoder's Parser, so each
// returned Slice is immediately copied into the Decoder's SliceScope:
// without that copy, the next Decode call would overwrite the
// Parser's internal Builder buffer and corrupt Slices already handed
// back to the caller.
func (d *Decoder) Decode() (Slice, error) {
	if d.buf == nil {
		data, err := io.ReadAll(d.r)
		if err != nil {
			return Slice{}, err
		}
		d.buf = data
	}
	d.cursor += simdtext.SkipWhitespace(d.buf[d.cursor:])
	if d.cursor >= len(d.buf) {
		return Slice{}, io.EOF
	}
	s, n, err := d.p.ParsePrefix(d.buf[d.cursor:])
	if err != nil {
		return Slice{}, err
	}
	d.cursor += n
	return d.scope.Add(s.Bytes()), nil
}

// Encoder dumps Slices as JSON text to an io.Writer.
type Encoder struct {
	sink *WriterSink
	opts *Options
}

// NewEncoder returns an Encoder writing to w under DefaultOptions.
func NewEncoder(w io.Writer) *Encoder {
	return NewEncoderOptions(w, defaultOptions)
}

// NewEncoderOptions returns an Encoder writing to w under opts. A nil
// opts uses DefaultOptions.
func NewEncoderOptions(w io.Writer, opts *Options) *Encoder {
	if opts == nil {
		opts = defaultOptions
	}
	return &Encoder{sink: NewWriterSink(w), opts: opts}
}

// Encode dumps s as JSON and flushes the underlying writer.
func (e *Encoder) Encode(s Slice) error {
	if err := NewDumper(e.sink, e.opts).Dump(s); err != nil {
		return err
	}
	return e.sink.Flush()
}

// Valid reports whether data parses as a single well-formed JSON value
// under DefaultOptions.
func Valid(data []byte) bool {
	_, err := Parse(data, defaultOptions)
	return err == nil
}
