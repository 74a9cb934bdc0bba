package vpack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vpackdb/vpack/internal/builder"
	"github.com/vpackdb/vpack/internal/simdtext"
)

// Parser turns JSON text into a VPACK-encoded Slice, one value (or
// top-level array of values, with KeepTopLevelOpen) at a time. Grounded
// on ArangoDB VelocyPack's Parser
// (_examples/original_source/src/Parser.cpp): single-pass, writes
// straight into a Builder with no intermediate tree, and reuses its
// exact number-boundary and string-promotion rules. Bulk whitespace
// skipping and string-body copying go through internal/simdtext, the
// pure-Go SWAR stand-in for biggeezerdevelopment/simdjson-go's unbacked
// SIMD declarations.
type Parser struct {
	opts *Options

	data []byte
	pos  int

	b           *builder.Builder
	keyScratch  *builder.Builder
	nestingDepth int
}

// NewParser returns a Parser configured by opts. A nil opts uses
// DefaultOptions.
func NewParser(opts *Options) *Parser {
	if opts == nil {
		opts = defaultOptions
	}
	return &Parser{opts: opts, keyScratch: builder.New()}
}

// Parse decodes exactly one JSON value (the leading BOM, if any, is
// skipped) and returns it as a Slice backed by a freshly built buffer.
// Unless Options.KeepTopLevelOpen is set, trailing non-whitespace bytes
// after the value are a ParseError.
//
// If Options.KeepTopLevelOpen is set and the top-level value is an
// array or object, Parse does not write that container's closing head
// byte: the Builder is left open (Builder.IsOpen reports true) so the
// caller can append further elements through Parser.Builder before
// closing it themselves. The Slice Parse returns in that case is the
// zero Slice (type None) rather than a usable value, since the
// container's head byte — and therefore its encoded form — does not
// exist yet. Call Builder().Close() and then FromBytes(Builder().Buf)
// once no more elements will be appended.
func Parse(data []byte, opts *Options) (Slice, error) {
	return NewParser(opts).Parse(data)
}

// Builder exposes the Parser's internal Builder. It is only meaningful
// in combination with Options.KeepTopLevelOpen: after a Parse call that
// left the top-level container open, further Add*/Close calls here
// continue building the same value.
func (p *Parser) Builder() *builder.Builder {
	return p.b
}

// Parse is the method form of the package-level Parse, reusing the
// Parser's internal Builder across calls.
func (p *Parser) Parse(data []byte) (Slice, error) {
	p.data = data
	p.pos = 0
	if p.b == nil {
		p.b = builder.New()
	} else {
		p.b.Reset()
	}
	p.b.SortAttributeNames = p.opts.SortAttributeNames
	p.b.CheckAttributeUniqueness = p.opts.CheckAttributeUniqueness

	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		p.pos = 3
	}

	p.skipWhitespace()
	if err := p.parseValue(); err != nil {
		return Slice{}, err
	}

	if !p.opts.KeepTopLevelOpen {
		p.skipWhitespace()
		if p.pos != len(p.data) {
			return Slice{}, p.errf("trailing content after JSON value")
		}
	}
	if p.b.IsOpen() {
		return Slice{}, nil
	}
	return Slice{buf: p.b.Buf}, nil
}

// ParsePrefix decodes exactly one JSON value starting at the front of
// data, ignoring anything after it, and reports how many bytes of data
// that value consumed (including any leading whitespace or BOM). It is
// the primitive a Decoder uses to read a stream of concatenated values
// out of a single buffer. The returned Slice aliases the Parser's
// internal Builder buffer exactly like Parse's does, and is only valid
// until the next call to Parse or ParsePrefix on the same Parser.
func (p *Parser) ParsePrefix(data []byte) (Slice, int, error) {
	p.data = data
	p.pos = 0
	if p.b == nil {
		p.b = builder.New()
	} else {
		p.b.Reset()
	}
	p.b.SortAttributeNames = p.opts.SortAttributeNames
	p.b.CheckAttributeUniqueness = p.opts.CheckAttributeUniqueness

	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		p.pos = 3
	}

	p.skipWhitespace()
	if err := p.parseValue(); err != nil {
		return Slice{}, 0, err
	}
	if p.b.IsOpen() {
		return Slice{}, p.pos, nil
	}
	return Slice{buf: p.b.Buf}, p.pos, nil
}

func (p *Parser) skipWhitespace() {
	p.pos += simdtext.SkipWhitespace(p.data[p.pos:])
}

func (p *Parser) peekByte() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	return p.data[p.pos], true
}

func (p *Parser) errf(format string, args ...interface{}) error {
	return newError(ParseError, "%s (at offset %d)", fmt.Sprintf(format, args...), p.pos)
}

func (p *Parser) errKind(kind ErrorKind, format string, args ...interface{}) error {
	return newError(kind, "%s (at offset %d)", fmt.Sprintf(format, args...), p.pos)
}

func (p *Parser) parseValue() error {
	p.skipWhitespace()
	c, ok := p.peekByte()
	if !ok {
		return p.errf("unexpected end of input")
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		str, err := p.parseStringLiteral()
		if err != nil {
			return err
		}
		return p.emitString(str)
	case c == 't':
		return p.parseLiteral("true", func() { p.b.AddBool(true) })
	case c == 'f':
		return p.parseLiteral("false", func() { p.b.AddBool(false) })
	case c == 'n':
		return p.parseLiteral("null", func() { p.b.AddNull() })
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.errf("unexpected character %q", c)
	}
}

func (p *Parser) parseLiteral(lit string, emit func()) error {
	if p.pos+len(lit) > len(p.data) || string(p.data[p.pos:p.pos+len(lit)]) != lit {
		return p.errf("invalid literal, expected %q", lit)
	}
	p.pos += len(lit)
	emit()
	return nil
}

// closeContainer finalizes the container the Parser just finished
// reading, unless it is the outermost one and Options.KeepTopLevelOpen
// is set — ported from Parser::parseArray/parseObject's "_nesting != 1
// || !options->keepTopLevelOpen" guard (original_source/src/Parser.cpp).
// p.nestingDepth still counts the container being closed at this point,
// since the defer that decrements it hasn't run yet.
func (p *Parser) closeContainer() error {
	if p.nestingDepth == 1 && p.opts.KeepTopLevelOpen {
		return nil
	}
	return p.b.Close()
}

func (p *Parser) parseArray() error {
	p.pos++
	p.b.OpenArray()
	p.nestingDepth++
	defer func() { p.nestingDepth-- }()

	p.skipWhitespace()
	if c, ok := p.peekByte(); ok && c == ']' {
		p.pos++
		return p.closeContainer()
	}

	for {
		if err := p.parseValue(); err != nil {
			return err
		}
		p.skipWhitespace()
		c, ok := p.peekByte()
		if !ok {
			return p.errf("unexpected end of input in array")
		}
		if c == ',' {
			p.pos++
			p.skipWhitespace()
			continue
		}
		if c == ']' {
			p.pos++
			break
		}
		return p.errf("expected ',' or ']' in array")
	}
	return p.closeContainer()
}

func (p *Parser) parseObject() error {
	p.pos++
	p.b.OpenObject()
	p.nestingDepth++
	defer func() { p.nestingDepth-- }()

	p.skipWhitespace()
	if c, ok := p.peekByte(); ok && c == '}' {
		p.pos++
		return p.closeContainer()
	}

	for {
		p.skipWhitespace()
		if c, ok := p.peekByte(); !ok {
			return p.errf("unexpected end of input in object, expected string key")
		} else if c != '"' {
			return p.errKind(BuilderKeyMustBeString, "expected string key in object, found %q", c)
		}
		key, err := p.parseStringLiteral()
		if err != nil {
			return err
		}

		p.skipWhitespace()
		if c, ok := p.peekByte(); !ok || c != ':' {
			return p.errf("expected ':' after object key")
		}
		p.pos++
		p.skipWhitespace()

		if err := p.addKey(key); err != nil {
			return err
		}
		if err := p.parseValue(); err != nil {
			return err
		}

		if p.opts.AttributeExcludeHandler != nil {
			p.keyScratch.Reset()
			p.keyScratch.AddString(key)
			if p.opts.AttributeExcludeHandler.ShouldExclude(Slice{buf: p.keyScratch.Buf}, p.nestingDepth) {
				p.b.RemoveLast()
			}
		}

		p.skipWhitespace()
		c, ok := p.peekByte()
		if !ok {
			return p.errf("unexpected end of input in object")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == '}' {
			p.pos++
			break
		}
		return p.errf("expected ',' or '}' in object")
	}
	return p.closeContainer()
}

func (p *Parser) addKey(key string) error {
	if p.opts.AttributeTranslator != nil {
		if encoded := p.opts.AttributeTranslator.TranslateName([]byte(key)); encoded != nil {
			return p.b.AddKeyRaw(encoded)
		}
	}
	return p.b.AddKeyString(key)
}

func (p *Parser) emitString(str string) error {
	if p.opts.VJSONExtension {
		switch {
		case strings.HasPrefix(str, "s:"):
			p.b.AddString(str[2:])
			return nil
		case strings.HasPrefix(str, "b:"):
			data, err := decodeVJSONBase64(str[2:])
			if err != nil {
				return wrapError(ParseError, err, "invalid base64 payload in b: string")
			}
			p.b.AddBinary(data)
			return nil
		case strings.HasPrefix(str, "d:"):
			millis, err := parseUTCDateString(str[2:])
			if err != nil {
				return wrapError(ParseError, err, "invalid date in d: string")
			}
			p.b.AddUTCDate(millis)
			return nil
		}
	}
	p.b.AddString(str)
	return nil
}

// base64DecodeTable maps both the standard (+/) and URL-safe (-_)
// base64 alphabets to their 6-bit values in a single pass, matching
// the permissive decoder VJSON's b: prefix relies on
// (_examples/original_source/src/Parser.cpp's Base64DecodeTable): a
// byte not in either alphabet decodes to -1.
var base64DecodeTable = buildBase64DecodeTable()

func buildBase64DecodeTable() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	t['-'] = 62
	t['_'] = 63
	return t
}

// decodeVJSONBase64 decodes s against base64DecodeTable, accepting
// either alphabet (even mixed) and tolerating missing padding; a
// trailing '=' run, if present, simply ends the scan early.
func decodeVJSONBase64(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*3/4+3)
	var acc uint32
	var bits int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			break
		}
		if c >= 128 || base64DecodeTable[c] < 0 {
			return nil, fmt.Errorf("invalid base64 character %q", c)
		}
		acc = acc<<6 | uint32(base64DecodeTable[c])
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
		}
	}
	return out, nil
}

func parseUTCDateString(s string) (int64, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UnixMilli(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// parseStringLiteral decodes a JSON string starting at the opening
// quote, using simdtext for the common run of unescaped bytes and a
// scalar path for escapes, surrogate pairs and (when
// Options.ValidateUTF8Strings is set) multi-byte UTF-8 validation.
func (p *Parser) parseStringLiteral() (string, error) {
	if c, ok := p.peekByte(); !ok || c != '"' {
		return "", p.errf("expected string")
	}
	p.pos++

	var out []byte
	checkUTF8 := p.opts.ValidateUTF8Strings
	for {
		if p.pos >= len(p.data) {
			return "", p.errf("unterminated string")
		}
		avail := len(p.data) - p.pos
		seg := p.data[p.pos:]
		var n int
		if checkUTF8 {
			// seg is passed as both src and dst: every write lands on
			// the same index it was just read from, so this in-place
			// pass needs no separate scratch buffer.
			n = simdtext.CopyStringCheckUTF8(seg, seg, avail)
		} else {
			n = simdtext.CopyString(seg, seg, avail)
		}
		out = append(out, seg[:n]...)
		p.pos += n

		if p.pos >= len(p.data) {
			return "", p.errf("unterminated string")
		}
		c := p.data[p.pos]
		switch {
		case c == '"':
			p.pos++
			return string(out), nil
		case c == '\\':
			p.pos++
			r, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			out = utf8.AppendRune(out, r)
		case c >= 0x80:
			r, size := utf8.DecodeRune(p.data[p.pos:])
			if r == utf8.RuneError && size <= 1 {
				return "", p.errKind(InvalidUtf8Sequence, "invalid UTF-8 sequence in string")
			}
			out = utf8.AppendRune(out, r)
			p.pos += size
		default:
			return "", p.errKind(UnexpectedControlCharacter, "unexpected control character %#02x in string", c)
		}
	}
}

func (p *Parser) parseEscape() (rune, error) {
	if p.pos >= len(p.data) {
		return 0, p.errf("unterminated escape sequence")
	}
	c := p.data[p.pos]
	p.pos++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		r1, err := p.parseHex4()
		if err != nil {
			return 0, err
		}
		if r1 >= 0xd800 && r1 <= 0xdbff {
			if p.pos+1 >= len(p.data) || p.data[p.pos] != '\\' || p.data[p.pos+1] != 'u' {
				return 0, p.errf("unpaired high surrogate")
			}
			p.pos += 2
			r2, err := p.parseHex4()
			if err != nil {
				return 0, err
			}
			if r2 < 0xdc00 || r2 > 0xdfff {
				return 0, p.errf("invalid low surrogate")
			}
			combined := 0x10000 + (r1-0xd800)*0x400 + (r2 - 0xdc00)
			return rune(combined), nil
		}
		if r1 >= 0xdc00 && r1 <= 0xdfff {
			return 0, p.errf("unpaired low surrogate")
		}
		return rune(r1), nil
	default:
		return 0, p.errf("invalid escape character %q", c)
	}
}

func (p *Parser) parseHex4() (uint32, error) {
	if p.pos+4 > len(p.data) {
		return 0, p.errf("truncated \\u escape")
	}
	v, err := strconv.ParseUint(string(p.data[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, p.errf("invalid \\u escape")
	}
	p.pos += 4
	return uint32(v), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseNumber follows the reference boundary rules: -9223372036854775808
// is the one negative literal that fits int64's range asymmetrically and
// is special-cased to Int; unsigned literals up to 2^64-1 become UInt;
// anything wider, and any literal with a decimal point or exponent,
// becomes Double, parsed from the original source substring via
// strconv.ParseFloat for full precision.
func (p *Parser) parseNumber() error {
	start := p.pos
	neg := false
	if p.data[p.pos] == '-' {
		neg = true
		p.pos++
	}
	intStart := p.pos
	for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
		p.pos++
	}
	if n := p.pos - intStart; n > 1 && p.data[intStart] == '0' {
		return p.errf("invalid number %q: leading zero not allowed", string(p.data[start:p.pos]))
	}
	isFloat := false
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		isFloat = true
		p.pos++
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		isFloat = true
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
		}
	}
	text := string(p.data[start:p.pos])
	if text == "" || text == "-" {
		return p.errf("invalid number")
	}

	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return wrapError(NumberOutOfRange, err, "invalid number %q", text)
		}
		p.b.AddDouble(v)
		return nil
	}

	if neg {
		if text == "-9223372036854775808" {
			p.b.AddInt(math.MinInt64)
			return nil
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil {
				return wrapError(NumberOutOfRange, err, "number %q out of range", text)
			}
			p.b.AddDouble(f)
			return nil
		}
		p.b.AddInt(v)
		return nil
	}

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return wrapError(NumberOutOfRange, err, "number %q out of range", text)
		}
		p.b.AddDouble(f)
		return nil
	}
	p.b.AddUInt(v)
	return nil
}
