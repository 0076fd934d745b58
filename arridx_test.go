package wtf8string

import "testing"

func TestParseArrayIndex(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"0", 0},
		{"1", 1},
		{"42", 42},
		{"4294967294", 4294967294}, // NoArrayIndex - 1
		{"4294967295", NoArrayIndex},
		{"4294967296", NoArrayIndex}, // overflow
		{"", NoArrayIndex},
		{"00", NoArrayIndex},  // leading zero
		{"01", NoArrayIndex},  // leading zero
		{"-1", NoArrayIndex},  // sign
		{"+1", NoArrayIndex},  // sign
		{"1a", NoArrayIndex},  // non-digit
		{"a1", NoArrayIndex},  // non-digit
		{"1.0", NoArrayIndex}, // non-digit
		{" 1", NoArrayIndex},  // whitespace
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseArrayIndex([]byte(tt.in)); got != tt.want {
				t.Fatalf("parseArrayIndex(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestHandleArrayIndex(t *testing.T) {
	in := NewInterner()

	h := in.InternBytes([]byte("42"))
	if got := h.ArrayIndexFast(); got != 42 {
		t.Fatalf("ArrayIndexFast() = %d, want 42", got)
	}
	if got := h.ArrayIndexSlow(); got != 42 {
		t.Fatalf("ArrayIndexSlow() = %d, want 42", got)
	}

	notIdx := in.InternBytes([]byte("hello"))
	if got := notIdx.ArrayIndexFast(); got != NoArrayIndex {
		t.Fatalf("ArrayIndexFast() on non-index string = %d, want NoArrayIndex", got)
	}
}
