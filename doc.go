// Package wtf8string implements the WTF-8 string core of an embedded
// ECMAScript-style runtime.
//
// # Overview
//
// WTF-8 generalizes UTF-8 to permit unpaired surrogate code points
// (U+D800..U+DFFF), so that ECMAScript strings — which are sequences of
// UTF-16 code units and need not be well-formed UTF-16 — can be stored
// compactly as a superset of valid UTF-8. Package wtf8string sanitizes
// arbitrary bytes into canonical WTF-8, interns the result into an
// immutable Handle, and implements the operations an ECMAScript engine
// needs on top of that representation: a dual byte/character length
// model (non-BMP scalars count as two UTF-16 code units), substring
// extraction and search over the character view, and conversion to
// CESU-8 for algorithms that want a fixed at-most-3-bytes-per-character
// encoding.
//
// # When to Use
//
// Use this package as the string-storage layer of a from-scratch
// ECMAScript (or similar UTF-16-semantics) engine:
//   - Interning source text, identifiers, and string literals
//   - Implementing String.prototype.charCodeAt/codePointAt/slice/indexOf
//   - Bridging host byte buffers (UTF-8, Latin-1, raw) into engine strings
//
// # When NOT to Use
//
// Not a general Unicode library: it does not perform case conversion,
// normalization, collation, or grapheme segmentation, and it does not
// implement a UTF-16 or UCS-2 in-memory representation. For those, use
// golang.org/x/text or the standard unicode/utf8 and unicode packages
// directly.
//
// # Basic Usage
//
//	in := NewInterner()
//	h := in.InternBytes([]byte("A\xc3\xa9 \xf0\x9f\x98\x80")) // "Aé 😀"
//	h.CharLen()                // 5 (non-BMP counts as 2)
//	sub := Substring(in, DefaultChar2ByteScanner, h, 3, 5) // the 😀, split as a surrogate pair if needed
//
// # Performance Characteristics
//
// Sanitization and character-length computation are both single linear
// passes over the input. The ASCII fast-path scanner (KeepCheckASCII)
// lets the interner skip sanitization entirely for already-canonical
// ASCII input by scanning aligned machine words. Substring extraction is
// O(1) additional allocation beyond the matched byte range except when a
// split lands inside a non-BMP codepoint, in which case one or two
// 3-byte surrogate halves are manufactured.
package wtf8string
