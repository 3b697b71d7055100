package istr

import (
	"unsafe"

	"github.com/arcanehash/istr/internal/payload"
	"github.com/arcanehash/istr/internal/unsafehelpers"
)

// Handle is a process-lifetime reference to an interned byte string.
// Equal byte content always produces an equal Handle (pointer identity),
// and a Handle remains valid and its bytes unchanged for the remaining
// life of the process — there is no Close, no reference counting, and no
// relocation.
//
// The zero Handle is not a valid handle; it is only ever returned
// alongside a false ok from Lookup/LookupSkipLocal.
type Handle struct {
	ptr unsafe.Pointer
}

func (h Handle) header() *payload.Header { return payload.HeaderOf(h.ptr) }

// Len returns the number of content bytes (not counting the NUL).
func (h Handle) Len() int { return int(h.header().Len) }

// StoredHash returns the hash computed when this string was first
// interned. Containers built on Handle (Map, Set) reuse this value
// instead of rehashing the content on every lookup.
func (h Handle) StoredHash() uint64 { return h.header().Hash }

// Bytes returns the interned content as a read-only view. The returned
// slice aliases arena memory that is never mutated or freed; callers must
// not write through it.
func (h Handle) Bytes() []byte {
	return unsafehelpers.ByteSliceFrom(h.ptr, uintptr(h.Len()))
}

// String returns a read-only string view of the interned content without
// copying. Safe because interned payloads are write-once.
func (h Handle) String() string {
	return unsafehelpers.BytesToString(h.Bytes())
}

// AsCStrPtr returns a pointer suitable for passing to C code expecting a
// NUL-terminated string: the handle's own pointer, since every payload
// carries a trailing NUL immediately after its content.
func (h Handle) AsCStrPtr() unsafe.Pointer { return h.ptr }

// Pointer exposes the handle's raw identity pointer, primarily for
// diagnostics (e.g. logging which payload a lookup resolved to).
func (h Handle) Pointer() unsafe.Pointer { return h.ptr }

// IsValid reports whether h was actually produced by Intern/Lookup,
// versus being a zero Handle.
func (h Handle) IsValid() bool { return h.ptr != nil }
