package wire

import "testing"

func TestUintRoundTrip(t *testing.T) {
	cases := []struct {
		width int
		value uint64
	}{
		{1, 0xab},
		{2, 0xbeef},
		{4, 0xdeadbeef},
		{8, 0x0123456789abcdef},
	}
	for _, c := range cases {
		buf := make([]byte, c.width)
		PutUint(buf, c.width, c.value)
		got := ReadUint(buf, c.width)
		if got != c.value {
			t.Errorf("width %d: PutUint/ReadUint round trip got %#x, want %#x", c.width, got, c.value)
		}
	}
}

func TestVarintForwardRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 40, ^uint64(0)}
	for _, v := range values {
		buf := AppendVarint(nil, v)
		got, n := ReadVarintForward(buf, 0)
		if got != v {
			t.Errorf("value %d: round trip got %d", v, got)
		}
		if n != len(buf) {
			t.Errorf("value %d: consumed %d bytes, want %d", v, n, len(buf))
		}
	}
}

func TestVarintReversedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 40}
	for _, v := range values {
		buf := AppendVarintReversed(nil, v)
		got, n := ReadVarintReverse(buf, len(buf))
		if got != v {
			t.Errorf("value %d: reverse round trip got %d", v, got)
		}
		if n != len(buf) {
			t.Errorf("value %d: consumed %d bytes, want %d", v, n, len(buf))
		}
	}
}

func TestVarintReversedMatchesForwardGroups(t *testing.T) {
	// The reversed encoding must be the byte-reverse of the forward
	// encoding, so a backward reader recovers the same 7-bit groups in
	// the same order a forward reader would.
	v := uint64(987654321)
	fwd := AppendVarint(nil, v)
	rev := AppendVarintReversed(nil, v)
	if len(fwd) != len(rev) {
		t.Fatalf("length mismatch: forward %d, reversed %d", len(fwd), len(rev))
	}
	for i := range fwd {
		if fwd[i] != rev[len(rev)-1-i] {
			t.Fatalf("byte %d: forward %#x, reversed-mirror %#x", i, fwd[i], rev[len(rev)-1-i])
		}
	}
}

func TestWidthFor(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{0, 1}, {255, 1}, {256, 2}, {65535, 2}, {65536, 4},
		{4294967295, 4}, {4294967296, 8}, {^uint64(0), 8},
	}
	for _, c := range cases {
		if got := WidthFor(c.n); got != c.want {
			t.Errorf("WidthFor(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
