package wtf8string

import (
	"bytes"
	"sync"
	"sync/atomic"
	"unsafe"
)

// NoArrayIndex is the sentinel ArrayIndexFast/ArrayIndexSlow return when a
// string does not parse as a canonical unsigned array index.
const NoArrayIndex uint32 = 0xffffffff

// clenUnset is the "not yet computed" sentinel for Handle.clen. Reusing 0
// is safe: the only string with a genuine character length of 0 is the
// empty string, which IsEmpty/CharLen special-case before ever consulting
// the lazy cell.
const clenUnset = 0

// Handle is an immutable, interned string descriptor: a data pointer,
// byte length, possibly-lazy character length, hash, and a small set of
// monotonic flags (spec §3). Two distinct Handles are never equal as byte
// sequences — interning guarantees handle identity implies byte equality,
// which is what lets Search (§4.I) compare substrings by pointer.
type Handle struct {
	data []byte
	kind Kind
	hash uint32

	clen      atomic.Int32 // lazy: clenUnset means "not yet computed" (see charLenSlow)
	asciiSet  atomic.Bool  // monotonic: false->true only, never true->false
	readOnly  bool
	hasArridx bool
	arridx    uint32
}

// Data returns the handle's bytes. If not a Symbol, these are always
// valid WTF-8 (spec §3 invariant 1).
func (h *Handle) Data() []byte { return h.data }

// DataEnd returns the address one past the handle's last byte, mirroring
// the C API's data()/data_end() pair; in Go this is just len(Data()),
// exposed for parity with spec §4.G's operation list.
func (h *Handle) DataEnd() int { return len(h.data) }

// ByteLen returns the handle's byte length.
func (h *Handle) ByteLen() int { return len(h.data) }

// IsEmpty reports whether the handle has zero bytes.
func (h *Handle) IsEmpty() bool { return len(h.data) == 0 }

// IsSymbol reports whether this handle is a Symbol (opaque, non-WTF-8)
// rather than an ordinary String.
func (h *Handle) IsSymbol() bool { return h.kind == KindSymbol }

// Hash returns the handle's 32-bit interning hash, written once at
// creation and never changed.
func (h *Handle) Hash() uint32 { return h.hash }

// IsASCII reports whether every byte is < 0x80 (and therefore
// ByteLen() == CharLen()). This flag is lazy: false does not mean
// "proven non-ASCII", only "not yet proven ASCII" — calling CharLen()
// may cause it to become true, but it is never un-set once true.
func (h *Handle) IsASCII() bool { return h.asciiSet.Load() }

// CharLen returns the ECMAScript character length (non-BMP scalars count
// as 2), computing and caching it on first use if the handle was created
// without a precomputed value. Symbol handles always report 0 (spec §3
// invariant 4: symbols are not user-visible as characters).
func (h *Handle) CharLen() int {
	if h.kind == KindSymbol {
		return 0
	}
	if h.IsEmpty() {
		return 0
	}
	if c := h.clen.Load(); c != clenUnset {
		return int(c)
	}
	return h.charLenSlow()
}

// charLenSlow computes CharLength(data), caches it (unless the handle is
// READ_ONLY, which is bit-frozen per spec §3 invariant 5), and sets the
// ASCII flag if the result shows the string is pure ASCII. The write is a
// single atomic store of the fully-reconciled value, so a racing reader
// under the concurrency model in spec §5 observes either the pre- or
// post-state, never a torn one.
func (h *Handle) charLenSlow() int {
	clen := CharLength(h.data)
	if !h.readOnly {
		h.clen.Store(int32(clen))
		if clen == len(h.data) {
			h.asciiSet.Store(true)
		}
	}
	return clen
}

// EqualsASCIICString reports whether the handle's bytes equal cstr
// byte-for-byte. Safe against any input bytes (length is compared first).
func (h *Handle) EqualsASCIICString(cstr string) bool {
	if len(cstr) != len(h.data) {
		return false
	}
	return string(h.data) == cstr
}

// ArrayIndexFast returns the handle's cached array-index value (set at
// interning time), or NoArrayIndex if the string does not parse as a
// canonical unsigned array index.
func (h *Handle) ArrayIndexFast() uint32 {
	if !h.hasArridx {
		return NoArrayIndex
	}
	return h.arridx
}

// ArrayIndexSlow recomputes the array-index value directly from the
// handle's bytes, ignoring any cached result.
func (h *Handle) ArrayIndexSlow() uint32 {
	return parseArrayIndex(h.data)
}

// String returns the handle's bytes as a Go string via a zero-copy cast,
// mirroring the teacher's unsafe.Slice(unsafe.StringData(s), len(s))
// idiom in reverse (fsst.Table.DecodeString). The returned string must
// not be mutated — Handle bytes are immutable by contract, but this cast
// does not itself enforce that at the type level.
func (h *Handle) String() string {
	if len(h.data) == 0 {
		return ""
	}
	return unsafe.String(&h.data[0], len(h.data))
}

// Interner deduplicates byte strings into unique Handles: handle identity
// implies byte equality (spec §3 invariant 6, §6 "intern" operation). It
// is the Go stand-in for the host heap/intern allocator spec §6 treats as
// an external collaborator.
type Interner struct {
	mu    sync.RWMutex
	table map[string]*Handle
}

// NewInterner returns an empty Interner, mirroring the teacher's
// newTable() constructor pattern.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*Handle)}
}

// InternBytes sanitizes raw, arbitrary bytes and returns the unique
// Handle for the sanitized result, allocating a new Handle only on a
// cache miss. This is the data-flow entry point from spec §2: raw bytes
// -> classify -> sanitize -> intern.
func (in *Interner) InternBytes(raw []byte) *Handle {
	kind := Classify(raw)
	if kind == KindSymbol {
		return in.intern(kind, SanitizeSymbol(raw), -1)
	}
	if KeepCheckASCII(raw) == len(raw) {
		// Pure ASCII is already canonical WTF-8: skip the sanitizer.
		return in.intern(kind, raw, len(raw))
	}
	sanitized, clen := SanitizeString(raw)
	return in.intern(kind, sanitized, clen)
}

// InternValidWTF8 interns bytes the caller has already sanitized (e.g. a
// substring's manufactured byte range, per spec §4.H), skipping a second
// sanitization pass. clen may be passed as -1 to defer character-length
// computation to the handle's first CharLen() call (the genuinely lazy
// path spec §9 describes).
func (in *Interner) InternValidWTF8(kind Kind, data []byte, clen int) *Handle {
	return in.intern(kind, data, clen)
}

// InternReadOnly is identical to InternBytes except that a newly created
// Handle is bit-frozen (spec §3 invariant 5): its lazy clen/ASCII fields
// are never written. On a cache hit the existing Handle is returned as
// is, so bytes first interned writable yield that writable Handle. Used
// for e.g. ROM/well-known strings shared read-only across many contexts.
func (in *Interner) InternReadOnly(raw []byte) *Handle {
	kind := Classify(raw)
	var data []byte
	var clen int
	if kind == KindSymbol {
		data, clen = SanitizeSymbol(raw), -1
	} else {
		data, clen = SanitizeString(raw)
	}
	return in.internReadOnly(kind, data, clen)
}

func (in *Interner) internReadOnly(kind Kind, data []byte, clen int) *Handle {
	return in.internLocked(kind, data, clen, true)
}

func (in *Interner) intern(kind Kind, data []byte, clen int) *Handle {
	return in.internLocked(kind, data, clen, false)
}

func (in *Interner) internLocked(kind Kind, data []byte, clen int, readOnly bool) *Handle {
	key := string(data) // copies data; used as the map key

	in.mu.RLock()
	if h, ok := in.table[key]; ok {
		in.mu.RUnlock()
		return h
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if h, ok := in.table[key]; ok {
		return h
	}

	h := &Handle{
		data:     []byte(key), // a second copy; the caller's slice is never retained
		readOnly: readOnly,
		kind:     kind,
		hash:     fnv32(data),
	}
	if kind == KindString {
		if clen >= 0 {
			h.clen.Store(int32(clen))
			if clen == len(data) {
				h.asciiSet.Store(true)
			}
		}
		h.arridx = parseArrayIndex(data)
		h.hasArridx = h.arridx != NoArrayIndex
	}
	in.table[key] = h
	return h
}

// fnv32 is a standard 32-bit FNV-1a hash, used as the interning hash
// (spec §3's "hash" field, §6's hash-width configuration point — this
// module fixes 32-bit, see SPEC_FULL.md §3).
func fnv32(data []byte) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for _, b := range data {
		h ^= uint32(b)
		h *= prime32
	}
	return h
}

// byteEqual is a tiny helper kept for parity with spec §6's "raw memory
// primitives: byte copy and byte compare" — Go's map equality already
// does this for us via the string key, but tests use it directly.
func byteEqual(a, b []byte) bool { return bytes.Equal(a, b) }
