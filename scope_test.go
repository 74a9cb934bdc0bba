package vpack

import (
	"testing"

	"github.com/vpackdb/vpack/internal/builder"
)

func TestSliceScopeAddCopiesBytes(t *testing.T) {
	b := builder.New()
	b.AddString("hello")

	sc := NewSliceScope()
	s := sc.Add(b.Buf)

	// Mutate the builder's buffer in place; the scoped copy must not see it.
	b.Buf[0] = 0x00

	str, err := s.StringValue()
	if err != nil {
		t.Fatal(err)
	}
	if str != "hello" {
		t.Fatalf("scoped slice aliased the source buffer: got %q", str)
	}
}

func TestSliceScopeResetReleasesBlocks(t *testing.T) {
	sc := NewSliceScope()
	sc.Add([]byte{0x18})
	sc.Add([]byte{0x19})
	if len(sc.blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(sc.blocks))
	}
	sc.Reset()
	if len(sc.blocks) != 0 {
		t.Fatalf("got %d blocks after reset, want 0", len(sc.blocks))
	}
}
