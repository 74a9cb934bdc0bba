package vpack

import (
	"fmt"
	"testing"

	"github.com/vpackdb/vpack/internal/builder"
	"github.com/vpackdb/vpack/internal/vtype"
)

func buildValue(t *testing.T, fn func(b *builder.Builder)) Slice {
	t.Helper()
	b := builder.New()
	fn(b)
	return FromBytes(b.Buf)
}

func TestScalarRoundTrip(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		s := buildValue(t, func(b *builder.Builder) { b.AddInt(-123456) })
		v, err := s.IntValue()
		if err != nil || v != -123456 {
			t.Fatalf("got %d, %v", v, err)
		}
	})
	t.Run("uint", func(t *testing.T) {
		s := buildValue(t, func(b *builder.Builder) { b.AddUInt(9999999999) })
		v, err := s.UintValue()
		if err != nil || v != 9999999999 {
			t.Fatalf("got %d, %v", v, err)
		}
	})
	t.Run("double", func(t *testing.T) {
		s := buildValue(t, func(b *builder.Builder) { b.AddDouble(3.14159) })
		v, err := s.DoubleValue()
		if err != nil || v != 3.14159 {
			t.Fatalf("got %v, %v", v, err)
		}
	})
	t.Run("string short", func(t *testing.T) {
		s := buildValue(t, func(b *builder.Builder) { b.AddString("hello") })
		v, err := s.StringValue()
		if err != nil || v != "hello" {
			t.Fatalf("got %q, %v", v, err)
		}
	})
	t.Run("string long", func(t *testing.T) {
		long := make([]byte, 500)
		for i := range long {
			long[i] = byte('a' + i%26)
		}
		s := buildValue(t, func(b *builder.Builder) { b.AddString(string(long)) })
		v, err := s.StringValue()
		if err != nil || v != string(long) {
			t.Fatalf("long string round trip failed: %v", err)
		}
	})
	t.Run("bool and null", func(t *testing.T) {
		s := buildValue(t, func(b *builder.Builder) { b.AddBool(true) })
		v, err := s.BoolValue()
		if err != nil || !v {
			t.Fatalf("got %v, %v", v, err)
		}
		n := buildValue(t, func(b *builder.Builder) { b.AddNull() })
		if !n.IsNull() {
			t.Fatal("expected IsNull")
		}
	})
}

func TestArrayRoundTrip(t *testing.T) {
	s := buildValue(t, func(b *builder.Builder) {
		b.OpenArray()
		b.AddInt(1)
		b.AddInt(2)
		b.AddInt(3)
		b.Close()
	})
	if s.Type() != vtype.Array {
		t.Fatalf("expected array, got %s", s.TypeName())
	}
	if s.Length() != 3 {
		t.Fatalf("expected length 3, got %d", s.Length())
	}
	for i, want := range []int64{1, 2, 3} {
		el, err := s.At(i)
		if err != nil {
			t.Fatal(err)
		}
		v, err := el.IntValue()
		if err != nil || v != want {
			t.Fatalf("index %d: got %d, want %d", i, v, want)
		}
	}
}

func TestArrayIndexedRoundTrip(t *testing.T) {
	s := buildValue(t, func(b *builder.Builder) {
		b.OpenArray()
		b.AddInt(1)
		b.AddString("a variable length payload to force indexed form")
		b.AddBool(false)
		b.Close()
	})
	if s.Head() < vtype.HeadArrayIndexed1 || s.Head() > vtype.HeadArrayIndexed8 {
		t.Fatalf("expected indexed array, got head %#x", s.Head())
	}
	if s.Length() != 3 {
		t.Fatalf("got length %d", s.Length())
	}
	el, err := s.At(2)
	if err != nil {
		t.Fatal(err)
	}
	v, err := el.BoolValue()
	if err != nil || v != false {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestObjectGetAllKeys(t *testing.T) {
	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}
	s := buildValue(t, func(b *builder.Builder) {
		b.OpenObject()
		for i, k := range keys {
			b.AddKeyString(k)
			b.AddInt(int64(i))
		}
		b.Close()
	})
	if s.Head() < vtype.HeadObjectIndexed1 || s.Head() > vtype.HeadObjectIndexed8 {
		t.Fatalf("expected cuckoo-indexed object, got head %#x", s.Head())
	}
	for i, k := range keys {
		v, err := s.Get(k)
		if err != nil {
			t.Fatalf("key %q: %v", k, err)
		}
		got, err := v.IntValue()
		if err != nil || got != int64(i) {
			t.Fatalf("key %q: got %d, want %d", k, got, i)
		}
	}
	missing, err := s.Get("missing")
	if err != nil {
		t.Fatalf("missing key: unexpected error %v", err)
	}
	if !missing.IsNone() {
		t.Fatal("expected a None Slice for a missing key")
	}
}

// TestCuckooThirdProbeIsIndependent builds an object large enough to need
// a nontrivial cuckoo table and confirms every key is reachable, which
// requires the third probe to compute its own slot position rather than
// reusing the second probe's (the latent defect fixed here, see Get's
// doc comment).
func TestCuckooThirdProbeIsIndependent(t *testing.T) {
	var keys []string
	for i := 0; i < 64; i++ {
		keys = append(keys, string(rune('a'+i%26))+string(rune('A'+i%26))+string(rune('0'+i%10)))
	}
	s := buildValue(t, func(b *builder.Builder) {
		b.OpenObject()
		for i, k := range keys {
			b.AddKeyString(k)
			b.AddInt(int64(i))
		}
		b.Close()
	})
	for i, k := range keys {
		v, err := s.Get(k)
		if err != nil {
			t.Fatalf("key %q not found: %v", k, err)
		}
		got, err := v.IntValue()
		if err != nil || got != int64(i) {
			t.Fatalf("key %q: got %d, want %d", k, got, i)
		}
	}
}

func TestForEachVisitsAllPairs(t *testing.T) {
	s := buildValue(t, func(b *builder.Builder) {
		b.OpenObject()
		b.AddKeyString("x")
		b.AddInt(1)
		b.AddKeyString("y")
		b.AddInt(2)
		b.Close()
	})
	seen := map[string]int64{}
	err := s.ForEach(func(key, value Slice) error {
		k, err := key.StringValue()
		if err != nil {
			return err
		}
		v, err := value.IntValue()
		if err != nil {
			return err
		}
		seen[k] = v
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen["x"] != 1 || seen["y"] != 2 {
		t.Fatalf("got %v", seen)
	}
}

func TestEqualsAndHash(t *testing.T) {
	a := buildValue(t, func(b *builder.Builder) {
		b.OpenObject()
		b.AddKeyString("a")
		b.AddInt(1)
		b.AddKeyString("b")
		b.AddInt(2)
		b.Close()
	})
	same := buildValue(t, func(b *builder.Builder) {
		b.OpenObject()
		b.AddKeyString("b")
		b.AddInt(2)
		b.AddKeyString("a")
		b.AddInt(1)
		b.Close()
	})
	if a.Equals(same) {
		t.Fatal("differently-ordered objects should not be byte-equal")
	}
	if a.NormalizedHash(1) != same.NormalizedHash(1) {
		t.Fatal("normalized hash should be order-insensitive")
	}
}

// TestNormalizedHashUpcastsNumbers confirms Int 5, UInt 5 and Double
// 5.0 all normalize to the same hash despite having distinct head
// bytes and wire encodings.
func TestNormalizedHashUpcastsNumbers(t *testing.T) {
	asInt := buildValue(t, func(b *builder.Builder) { b.AddInt(5) })
	asUint := buildValue(t, func(b *builder.Builder) { b.AddUInt(5) })
	asDouble := buildValue(t, func(b *builder.Builder) { b.AddDouble(5.0) })

	h := asInt.NormalizedHash(7)
	if asUint.NormalizedHash(7) != h {
		t.Fatal("UInt 5 should hash the same as Int 5")
	}
	if asDouble.NormalizedHash(7) != h {
		t.Fatal("Double 5.0 should hash the same as Int 5")
	}

	asSix := buildValue(t, func(b *builder.Builder) { b.AddInt(6) })
	if asSix.NormalizedHash(7) == h {
		t.Fatal("distinct numeric values must not collide")
	}
}

// TestObjectStoredOrderIsPreserved confirms iteration (and therefore
// dumping) of a cuckoo-indexed object walks its stored insertion order,
// not scattered cuckoo slot order.
func TestObjectStoredOrderIsPreserved(t *testing.T) {
	order := []string{"zeta", "alpha", "mu", "delta", "theta", "iota"}
	s := buildValue(t, func(b *builder.Builder) {
		b.OpenObject()
		for i, k := range order {
			b.AddKeyString(k)
			b.AddInt(int64(i))
		}
		b.Close()
	})
	if s.Head() < vtype.HeadObjectIndexed1 || s.Head() > vtype.HeadObjectIndexed8 {
		t.Fatalf("expected cuckoo-indexed object, got head %#x", s.Head())
	}

	var got []string
	err := s.ForEach(func(key, value Slice) error {
		k, err := key.StringValue()
		if err != nil {
			return err
		}
		got = append(got, k)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(order) {
		t.Fatalf("got %d pairs, want %d", len(got), len(order))
	}
	for i := range order {
		if got[i] != order[i] {
			t.Fatalf("pair %d: got %q, want %q (stored order not preserved)", i, got[i], order[i])
		}
	}
}

// TestCuckooObjectAcrossWidthThresholds builds objects large enough to
// push the cuckoo object's width field into the 2-byte (100 keys) and
// 4-byte (10,000 keys) classes, confirming every key is still reachable
// and no key outside the built set is found. The 8-byte class is not
// reached here.
func TestCuckooObjectAcrossWidthThresholds(t *testing.T) {
	for _, n := range []int{100, 10000} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			keys := make([]string, n)
			for i := range keys {
				keys[i] = fmt.Sprintf("attribute-%06d", i)
			}
			s := buildValue(t, func(b *builder.Builder) {
				b.OpenObject()
				for i, k := range keys {
					b.AddKeyString(k)
					b.AddInt(int64(i))
				}
				b.Close()
			})
			if s.Head() < vtype.HeadObjectIndexed1 || s.Head() > vtype.HeadObjectIndexed8 {
				t.Fatalf("expected cuckoo-indexed object, got head %#x", s.Head())
			}
			if s.Length() != n {
				t.Fatalf("got length %d, want %d", s.Length(), n)
			}
			for i, k := range keys {
				v, err := s.Get(k)
				if err != nil {
					t.Fatalf("key %q not found: %v", k, err)
				}
				got, err := v.IntValue()
				if err != nil || got != int64(i) {
					t.Fatalf("key %q: got %d, want %d", k, got, i)
				}
			}
			missing, err := s.Get("attribute-not-present")
			if err != nil {
				t.Fatalf("unexpected error on miss: %v", err)
			}
			if !missing.IsNone() {
				t.Fatal("expected a None Slice for a key outside the built set")
			}
		})
	}
}

func TestCompactContainerRoundTrip(t *testing.T) {
	s := buildValue(t, func(b *builder.Builder) {
		b.Compact = true
		b.OpenObject()
		b.AddKeyString("one")
		b.AddInt(1)
		b.AddKeyString("two")
		b.AddInt(2)
		b.Close()
	})
	if s.Head() != vtype.HeadCompactObject {
		t.Fatalf("expected compact object head, got %#x", s.Head())
	}
	v, err := s.Get("two")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := v.IntValue()
	if got != 2 {
		t.Fatalf("got %d", got)
	}
}
