package wtf8string

// NotFound is the sentinel character offset SearchForwards/SearchBackwards
// return when needle does not occur in input (at or after/before
// startChar, respectively).
const NotFound = -1

// SearchForwards returns the smallest character offset i >= startChar
// such that Substring(input, i, i+needle.CharLen()) equals needle, or
// NotFound. An empty needle always matches at startChar.
//
// Matching relies on interning: two Handles are equal iff they are the
// same pointer (spec §3 invariant 6), so each candidate substring is
// extracted and compared by identity rather than by a byte scan.
func SearchForwards(in *Interner, scanner Char2ByteScanner, input, needle *Handle, startChar int) int {
	inputLen := input.CharLen()
	needleLen := needle.CharLen()

	for charOff := startChar; charOff+needleLen <= inputLen; charOff++ {
		if Substring(in, scanner, input, charOff, charOff+needleLen) == needle {
			return charOff
		}
	}
	return NotFound
}

// SearchBackwards returns the largest character offset i <= startChar
// such that Substring(input, i, i+needle.CharLen()) equals needle, or
// NotFound.
func SearchBackwards(in *Interner, scanner Char2ByteScanner, input, needle *Handle, startChar int) int {
	inputLen := input.CharLen()
	needleLen := needle.CharLen()

	for charOff := startChar; charOff >= 0; charOff-- {
		if charOff+needleLen > inputLen {
			continue
		}
		if Substring(in, scanner, input, charOff, charOff+needleLen) == needle {
			return charOff
		}
	}
	return NotFound
}
