package wtf8string

import "testing"

func TestSubstringASCIIFastPath(t *testing.T) {
	in := NewInterner()
	h := in.InternBytes([]byte("hello world"))
	sub := Substring(in, DefaultChar2ByteScanner, h, 0, 5)
	if sub.String() != "hello" {
		t.Fatalf("substring = %q, want %q", sub.String(), "hello")
	}
}

func TestSubstringEmptyRange(t *testing.T) {
	in := NewInterner()
	h := in.InternBytes([]byte("hello"))
	sub := Substring(in, DefaultChar2ByteScanner, h, 2, 2)
	if !sub.IsEmpty() {
		t.Fatalf("expected empty substring, got %q", sub.String())
	}
}

func TestSubstringSplitsSupplementaryCodepoint(t *testing.T) {
	in := NewInterner()
	// 😀 alone, clen == 2.
	h := in.InternBytes([]byte{0xf0, 0x9f, 0x98, 0x80})

	high := Substring(in, DefaultChar2ByteScanner, h, 0, 1)
	wantHigh := []byte{0xed, 0xa0, 0xbd}
	if !byteEqual(high.Data(), wantHigh) {
		t.Fatalf("high half = % x, want % x", high.Data(), wantHigh)
	}

	low := Substring(in, DefaultChar2ByteScanner, h, 1, 2)
	wantLow := []byte{0xed, 0xb8, 0x80}
	if !byteEqual(low.Data(), wantLow) {
		t.Fatalf("low half = % x, want % x", low.Data(), wantLow)
	}
}

func TestSubstringIdentityUnderInterning(t *testing.T) {
	in := NewInterner()
	h := in.InternBytes([]byte{0x41, 0xf0, 0x9f, 0x98, 0x80, 0x42})
	whole := Substring(in, DefaultChar2ByteScanner, h, 0, h.CharLen())
	if whole != h {
		t.Fatalf("substring(h, 0, charlen(h)) did not return h by identity")
	}
}

func TestSubstringMixedBoundary(t *testing.T) {
	in := NewInterner()
	// "A" + 😀 + "B", chars: [A, hi, lo, B]
	h := in.InternBytes([]byte{0x41, 0xf0, 0x9f, 0x98, 0x80, 0x42})

	// [0,1) -> "A"
	if got := Substring(in, DefaultChar2ByteScanner, h, 0, 1); got.String() != "A" {
		t.Fatalf("[0,1) = %q, want %q", got.String(), "A")
	}
	// [3,4) -> "B"
	if got := Substring(in, DefaultChar2ByteScanner, h, 3, 4); got.String() != "B" {
		t.Fatalf("[3,4) = %q, want %q", got.String(), "B")
	}
	// [1,3) -> whole emoji, byte-identical to original encoding. This
	// range does not split the supplementary scalar, so it takes the
	// no-manufacture fast path; its clen must be the char count (2), not
	// the byte count (4), and it must not be misreported as ASCII.
	whole := Substring(in, DefaultChar2ByteScanner, h, 1, 3)
	want := []byte{0xf0, 0x9f, 0x98, 0x80}
	if !byteEqual(whole.Data(), want) {
		t.Fatalf("[1,3) = % x, want % x", whole.Data(), want)
	}
	if whole.CharLen() != 2 {
		t.Fatalf("[1,3) CharLen() = %d, want 2", whole.CharLen())
	}
	if whole.IsASCII() {
		t.Fatalf("[1,3) wrongly reports ASCII for a 4-byte non-BMP scalar")
	}
}

func TestSubstringOutOfBoundsPanics(t *testing.T) {
	in := NewInterner()
	h := in.InternBytes([]byte("abc"))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-bounds substring")
		}
	}()
	Substring(in, DefaultChar2ByteScanner, h, 1, 10)
}
