package vpack

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	input := []byte(`{"name":"ferret","count":3,"tags":["a","b"]}`)
	encoded, err := Marshal(input)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Unmarshal(encoded)
	if err != nil {
		t.Fatal(err)
	}

	reparsedOriginal, err := Parse(input, nil)
	if err != nil {
		t.Fatal(err)
	}
	reparsedDecoded, err := Parse(decoded, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reparsedOriginal.Equals(reparsedDecoded) {
		t.Fatalf("round trip drifted: got %s", decoded)
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte(`{"a":1}`)) {
		t.Fatal("expected valid")
	}
	if Valid([]byte(`{"a":}`)) {
		t.Fatal("expected invalid")
	}
}

func TestDecoderEncoder(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`[1,2,3]`))
	s, err := dec.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if s.Length() != 3 {
		t.Fatalf("got length %d", s.Length())
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[1,2,3]" {
		t.Fatalf("got %q", buf.String())
	}
}

// Values decoded off a concatenated stream share the Decoder's Parser,
// so the first value's bytes would be clobbered once the second value
// reuses the Parser's Builder buffer if the Decoder didn't copy each
// result out through a SliceScope first. Read both values back only
// after every Decode call has returned, to prove the first one is
// still intact.
func TestDecoderStreamKeepsEarlierValuesValid(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`{"a":1}  {"a":2,"b":3}   `))

	first, err := dec.Decode()
	if err != nil {
		t.Fatal(err)
	}
	second, err := dec.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dec.Decode(); err != io.EOF {
		t.Fatalf("expected io.EOF after last value, got %v", err)
	}

	a, err := first.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	av, err := a.IntValue()
	if err != nil {
		t.Fatal(err)
	}
	if av != 1 {
		t.Fatalf("first value corrupted: got a=%d", av)
	}
	if second.Length() != 2 {
		t.Fatalf("second value: got length %d", second.Length())
	}
}
