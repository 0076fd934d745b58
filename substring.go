package wtf8string

// Substring produces the interned Handle for h's characters in
// [start, end) under the ECMAScript (surrogate-pair) view. Preconditions:
// 0 <= start <= end <= h.CharLen().
//
// Three paths, fastest first:
//  1. h is pure ASCII: byte offsets equal character offsets, so the
//     result is a direct interned copy of data[start:end].
//  2. start == end: the empty interned string (avoids a corner case where
//     both offsets could split the same non-BMP codepoint).
//  3. General case: consult scanner for the byte offsets of start and
//     end. If either offset lands inside a non-BMP codepoint, manufacture
//     the corresponding surrogate half (spec §4.H steps 4-5) and splice it
//     onto the copied middle range; otherwise emit the slice directly
//     with no temporary allocation.
//
// Per spec §9 open question 1, manufactured surrogate halves are not
// re-coalesced with the copied middle even if they'd form a valid pair at
// the splice point — that is documented non-coalesced behavior, not a
// bug: re-sanitizing every substring call would make the direct-slice
// fast path always allocate.
func Substring(in *Interner, scanner Char2ByteScanner, h *Handle, start, end int) *Handle {
	clen := h.CharLen()
	if start < 0 || end < start || end > clen {
		panic("wtf8string: Substring: offsets out of bounds")
	}

	if h.IsASCII() {
		return in.InternValidWTF8(KindString, h.data[start:end], end-start)
	}

	if start == end {
		return in.InternValidWTF8(KindString, nil, 0)
	}

	data := h.data

	startByteOff, startCharAtByte := scanner.ScanCharToByte(h, start)
	var prefixSurrogate uint32
	copyStart := startByteOff
	if startCharAtByte != start {
		startCP := DecodeKnown(data[startByteOff:])
		prefixSurrogate = 0xdc00 + ((uint32(startCP) - 0x10000) & 0x3ff)
		copyStart = startByteOff + 4 // skip the split 4-byte encoding entirely
	}

	endByteOff, endCharAtByte := scanner.ScanCharToByte(h, end)
	var suffixSurrogate uint32
	copyEnd := endByteOff
	if endCharAtByte != end {
		endCP := DecodeKnown(data[endByteOff:])
		suffixSurrogate = 0xd800 + ((uint32(endCP) - 0x10000) >> 10)
		copyEnd = endByteOff
	}

	if prefixSurrogate == 0 && suffixSurrogate == 0 {
		return in.InternValidWTF8(KindString, data[copyStart:copyEnd:copyEnd], end-start)
	}

	copySize := copyEnd - copyStart
	allocSize := copySize
	if prefixSurrogate != 0 {
		allocSize += 3
	}
	if suffixSurrogate != 0 {
		allocSize += 3
	}

	buf := make([]byte, 0, allocSize)
	if prefixSurrogate != 0 {
		buf = appendSurrogateWTF8(buf, prefixSurrogate)
	}
	buf = append(buf, data[copyStart:copyEnd]...)
	if suffixSurrogate != 0 {
		buf = appendSurrogateWTF8(buf, suffixSurrogate)
	}

	return in.InternValidWTF8(KindString, buf, -1)
}

// appendSurrogateWTF8 appends the 3-byte WTF-8 encoding (lead 0xED) of a
// surrogate code point s (0xD800..0xDFFF) to buf.
func appendSurrogateWTF8(buf []byte, s uint32) []byte {
	return append(buf,
		0xed,
		byte(0x80+((s>>6)&0x3f)),
		byte(0x80+(s&0x3f)))
}
