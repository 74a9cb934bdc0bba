package vpack

import (
	"errors"
	"math"
	"testing"
)

func parseOrFail(t *testing.T, data string) Slice {
	t.Helper()
	s, err := Parse([]byte(data), nil)
	if err != nil {
		t.Fatalf("parse %q: %v", data, err)
	}
	return s
}

func TestParseScalars(t *testing.T) {
	t.Run("true/false/null", func(t *testing.T) {
		if v, _ := parseOrFail(t, "true").BoolValue(); !v {
			t.Fatal("expected true")
		}
		if v, _ := parseOrFail(t, "false").BoolValue(); v {
			t.Fatal("expected false")
		}
		if !parseOrFail(t, "null").IsNull() {
			t.Fatal("expected null")
		}
	})
	t.Run("positive integer becomes uint", func(t *testing.T) {
		s := parseOrFail(t, "42")
		v, err := s.UintValue()
		if err != nil || v != 42 {
			t.Fatalf("got %d, %v", v, err)
		}
	})
	t.Run("negative integer becomes int", func(t *testing.T) {
		s := parseOrFail(t, "-42")
		v, err := s.IntValue()
		if err != nil || v != -42 {
			t.Fatalf("got %d, %v", v, err)
		}
	})
	t.Run("int64 min boundary", func(t *testing.T) {
		s := parseOrFail(t, "-9223372036854775808")
		v, err := s.IntValue()
		if err != nil || v != math.MinInt64 {
			t.Fatalf("got %d, %v", v, err)
		}
	})
	t.Run("uint64 max boundary", func(t *testing.T) {
		s := parseOrFail(t, "18446744073709551615")
		v, err := s.UintValue()
		if err != nil || v != math.MaxUint64 {
			t.Fatalf("got %d, %v", v, err)
		}
	})
	t.Run("beyond uint64 becomes double", func(t *testing.T) {
		s := parseOrFail(t, "99999999999999999999999")
		if s.Type().String() != "double" {
			t.Fatalf("expected double, got %s", s.TypeName())
		}
	})
	t.Run("float", func(t *testing.T) {
		s := parseOrFail(t, "3.5e2")
		v, err := s.DoubleValue()
		if err != nil || v != 350 {
			t.Fatalf("got %v, %v", v, err)
		}
	})
	t.Run("string with escapes", func(t *testing.T) {
		s := parseOrFail(t, `"a\nb\tc\"d"`)
		v, err := s.StringValue()
		if err != nil || v != "a\nb\tc\"d" {
			t.Fatalf("got %q, %v", v, err)
		}
	})
	t.Run("string with unicode escape", func(t *testing.T) {
		s := parseOrFail(t, `"\u00e9"`)
		v, err := s.StringValue()
		if err != nil || v != "é" {
			t.Fatalf("got %q, %v", v, err)
		}
	})
	t.Run("string with surrogate pair", func(t *testing.T) {
		s := parseOrFail(t, `"\ud83d\ude00"`)
		v, err := s.StringValue()
		if err != nil || v != "😀" {
			t.Fatalf("got %q, %v", v, err)
		}
	})
}

func TestParseArrayAndObject(t *testing.T) {
	s := parseOrFail(t, `[1, 2, {"a": true, "b": [3, 4]}]`)
	if s.Length() != 3 {
		t.Fatalf("got length %d", s.Length())
	}
	third, err := s.At(2)
	if err != nil {
		t.Fatal(err)
	}
	a, err := third.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := a.BoolValue(); !v {
		t.Fatal("expected true")
	}
	bArr, err := third.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if bArr.Length() != 2 {
		t.Fatalf("got length %d", bArr.Length())
	}
}

func TestParseWhitespaceAndNesting(t *testing.T) {
	s := parseOrFail(t, "  {\n  \"x\"  :  [ 1 ,2 , 3 ]  }  ")
	v, err := s.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.Length() != 3 {
		t.Fatalf("got length %d", v.Length())
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse([]byte("1 2"), nil)
	if err == nil {
		t.Fatal("expected trailing content error")
	}
}

func TestParseVJSONExtension(t *testing.T) {
	opts := DefaultOptions()
	opts.VJSONExtension = true
	s, err := Parse([]byte(`"b:aGVsbG8="`), opts)
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.BinaryValue()
	if err != nil || string(data) != "hello" {
		t.Fatalf("got %v, %v", data, err)
	}
}

func TestParseRejectsUnescapedControlCharacter(t *testing.T) {
	_, err := Parse([]byte("\"a\x01b\""), nil)
	if err == nil {
		t.Fatal("expected an error for an unescaped control character in a string")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if verr.Kind != UnexpectedControlCharacter {
		t.Fatalf("got kind %s, want UnexpectedControlCharacter", verr.Kind)
	}
}

func TestParseRejectsInvalidUTF8Sequence(t *testing.T) {
	opts := DefaultOptions()
	opts.ValidateUTF8Strings = true
	_, err := Parse([]byte("\"a\x80b\""), opts)
	if err == nil {
		t.Fatal("expected an error for an invalid UTF-8 byte in a string")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if verr.Kind != InvalidUtf8Sequence {
		t.Fatalf("got kind %s, want InvalidUtf8Sequence", verr.Kind)
	}
}

func TestParseRejectsNonStringObjectKey(t *testing.T) {
	_, err := Parse([]byte(`{1: 2}`), nil)
	if err == nil {
		t.Fatal("expected an error for a non-string object key")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if verr.Kind != BuilderKeyMustBeString {
		t.Fatalf("got kind %s, want BuilderKeyMustBeString", verr.Kind)
	}
}

func TestParseRejectsLeadingZero(t *testing.T) {
	for _, bad := range []string{"01", "-01", "00", "-00", "007"} {
		if _, err := Parse([]byte(bad), nil); err == nil {
			t.Errorf("%q: expected a leading-zero parse error", bad)
		}
	}
	for _, ok := range []string{"0", "-0", "0.5", "10", "-10"} {
		if _, err := Parse([]byte(ok), nil); err != nil {
			t.Errorf("%q: unexpected error %v", ok, err)
		}
	}
}

func TestParseVJSONBase64AcceptsURLSafeAlphabet(t *testing.T) {
	opts := DefaultOptions()
	opts.VJSONExtension = true
	// "hello>>>" base64-encoded with the URL-safe alphabet contains a
	// '-' where the standard alphabet would use '+'.
	s, err := Parse([]byte(`"b:aGVsbG8-Pj4="`), opts)
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.BinaryValue()
	if err != nil || string(data) != "hello>>>" {
		t.Fatalf("got %v, %v", data, err)
	}
}

func TestKeepTopLevelOpenLeavesContainerOpenForFurtherAppends(t *testing.T) {
	opts := DefaultOptions()
	opts.KeepTopLevelOpen = true
	p := NewParser(opts)

	s, err := p.Parse([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsNone() {
		t.Fatal("expected the zero Slice while the top-level container is still open")
	}
	if !p.Builder().IsOpen() {
		t.Fatal("expected Builder to still be open")
	}

	p.Builder().AddInt(4)
	if err := p.Builder().Close(); err != nil {
		t.Fatal(err)
	}

	final := FromBytes(p.Builder().Buf)
	if final.Length() != 4 {
		t.Fatalf("got length %d, want 4", final.Length())
	}
	last, err := final.At(3)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := last.IntValue(); v != 4 {
		t.Fatalf("got %d, want 4", v)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	original := `{"a":1,"b":[true,false,null],"c":"text"}`
	s := parseOrFail(t, original)
	out, err := DumpString(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := Parse([]byte(out), nil)
	if err != nil {
		t.Fatalf("reparsing dumped output failed: %v", err)
	}
	if !reparsed.Equals(s) {
		t.Fatalf("round trip mismatch: got %s", out)
	}
}
