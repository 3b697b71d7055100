// Package unsafehelpers collects the zero-copy conversion and alignment
// helpers built on the unsafe standard library package. It is not the only
// user of unsafe: internal/arena, internal/payload and pkg/istr also use it
// directly for their own pointer arithmetic. Every helper documents its
// pre/post-conditions.
//
// DISCLAIMER: these helpers deliberately step outside the Go memory-safety
// model for zero-allocation conversions and pointer arithmetic over
// interned payloads. Use only inside this repository.
//
// © 2025 arena-cache authors. MIT License.
package unsafehelpers

import "unsafe"

/* -------------------------------------------------------------------------
   1. Zero-copy string/[]byte conversions
   ------------------------------------------------------------------------- */

// BytesToString converts a byte slice to a string without allocating. The
// caller must guarantee the backing bytes are never mutated afterwards —
// safe for interned payload bytes, which are write-once by construction.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// StringToBytes re-interprets string data as a byte slice without copying.
// The returned slice must be treated as read-only.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

/* -------------------------------------------------------------------------
   2. Generic pointer <-> slice helpers
   ------------------------------------------------------------------------- */

// PtrSlice converts an arbitrary *T pointer + element count into a []T
// without copying. The slice is still backed by whatever memory ptr points
// into; the usual rules about that memory's lifetime still apply.
func PtrSlice[T any](ptr *T, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(ptr, n)
}

// ByteSliceFrom returns a []byte view of raw memory starting at ptr with
// the given length. Caller must ensure the block is at least length bytes.
func ByteSliceFrom(ptr unsafe.Pointer, length uintptr) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

/* -------------------------------------------------------------------------
   3. Alignment helpers
   ------------------------------------------------------------------------- */

// AlignDown rounds x down to the nearest multiple of align (a power of
// two). The arena's downward-bumping allocator applies the same mask
// inline rather than calling this helper.
func AlignDown(x, align uintptr) uintptr {
	return x &^ (align - 1)
}

// AlignUp rounds x up to the nearest multiple of align (a power of two).
func AlignUp(x, align uintptr) uintptr {
	return (x + align - 1) &^ (align - 1)
}

// IsPowerOfTwo returns true if x is a power of two (exactly one bit set).
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}
