package simdtext

import "testing"

func TestSkipWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"none", `"x"`, 0},
		{"spaces", "        abc", 8},
		{"mixed", " \t\n\r abc", 5},
		{"all whitespace", "        ", 8},
		{"long run crosses word boundary", "                     end", 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkipWhitespace([]byte(tt.input)); got != tt.want {
				t.Errorf("SkipWhitespace(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCopyString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain short", `abc"`, "abc"},
		{"plain long crosses word boundary", `abcdefghijklmnopqrstuvwxyz"`, "abcdefghijklmnopqrstuvwxyz"},
		{"stops at backslash", `ab\ncd"`, "ab"},
		{"stops at control byte", "ab\x01cd\"", "ab"},
		{"empty", `"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.input)
			dst := make([]byte, len(src))
			n := CopyString(dst, src, len(src))
			if string(dst[:n]) != tt.want {
				t.Errorf("CopyString(%q) = %q, want %q", tt.input, dst[:n], tt.want)
			}
		})
	}
}

func TestCopyStringSelfCopyInPlace(t *testing.T) {
	// The parser reuses the source segment as its own destination
	// (the scratch-free fast path), relying on CopyString never writing
	// ahead of the position it last read from.
	buf := []byte(`abcdefghijklmnopqrstuvwxyz"rest`)
	n := CopyString(buf, buf, len(buf))
	if string(buf[:n]) != "abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("self-copy produced %q", buf[:n])
	}
}

func TestCopyStringCheckUTF8StopsAtHighBit(t *testing.T) {
	src := []byte("abc\xc3\xa9def\"")
	dst := make([]byte, len(src))
	n := CopyStringCheckUTF8(dst, src, len(src))
	if string(dst[:n]) != "abc" {
		t.Fatalf("CopyStringCheckUTF8 = %q, want %q", dst[:n], "abc")
	}
}

func TestCopyStringCheckUTF8AllASCII(t *testing.T) {
	src := []byte(`all ascii, no high bytes here at all"`)
	dst := make([]byte, len(src))
	n := CopyStringCheckUTF8(dst, src, len(src))
	if string(dst[:n]) != "all ascii, no high bytes here at all" {
		t.Fatalf("got %q", dst[:n])
	}
}
