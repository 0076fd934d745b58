package wtf8string

// CharLength counts the ECMAScript-visible characters in data, which must
// already be valid WTF-8 (caller's responsibility — see IsValidWTF8). Each
// leading byte contributes: <=0x7F -> 1 char; 0xC2-0xDF -> 1 char (2
// bytes); 0xE0-0xEF -> 1 char (3 bytes); 0xF0-0xF4 -> 2 chars (4 bytes).
// The +2 for 4-byte sequences reflects that a non-BMP scalar would occupy
// two UTF-16 code units (a surrogate pair) in the ECMAScript view.
func CharLength(data []byte) int {
	p := 0
	n := len(data)
	adj := 0

	for p != n {
		x := data[p]
		switch {
		case x <= 0x7f:
			p++
		case x <= 0xdf:
			p += 2
			adj++ // 2 bytes, 1 char
		case x <= 0xef:
			p += 3
			adj += 2 // 3 bytes, 1 char
		default:
			p += 4
			adj += 2 // 4 bytes, 2 chars
		}
	}
	return n - adj
}
