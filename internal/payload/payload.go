// Package payload defines the on-arena layout every interned byte string
// is stored in: a fixed Header immediately followed by the content bytes
// and a trailing NUL. A Handle (see pkg/istr) is a pointer to the first
// content byte; the header sits at a fixed negative offset from it, which
// is what makes Handle.AsCStrPtr a zero-cost identity.
//
// © 2025 arena-cache authors. MIT License.
package payload

import (
	"math"
	"unsafe"

	"github.com/arcanehash/istr/internal/fatal"
)

// Header precedes every payload's content bytes.
type Header struct {
	Hash uint64
	Len  uint32
}

const (
	headerSize  = unsafe.Sizeof(Header{})
	headerAlign = unsafe.Alignof(Header{})
)

// Allocator is the minimal surface payload.New needs from an arena chain.
type Allocator interface {
	Alloc(size, align uintptr) unsafe.Pointer
}

// New reserves header + len(data) + 1 bytes from alloc, writes the header
// and content, appends a trailing NUL, and returns a pointer to the first
// content byte (the Handle's pointer). It aborts the process if the
// requested size cannot be represented without overflow — this mirrors
// the spec's "size overflow is fatal" contract; it is not a condition a
// caller can recover from, since it would indicate len(data) is already
// larger than addressable memory allows.
func New(alloc Allocator, hash uint64, data []byte) unsafe.Pointer {
	n := uint64(len(data))
	if n > math.MaxUint32 {
		fatal.Abort("payload: length exceeds uint32 range")
	}
	total := uint64(headerSize) + n + 1
	if total < n { // overflow of the uint64 sum itself
		fatal.Abort("payload: size computation overflowed")
	}

	raw := alloc.Alloc(uintptr(total), headerAlign)
	hdr := (*Header)(raw)
	hdr.Hash = hash
	hdr.Len = uint32(n)

	content := unsafe.Add(raw, headerSize)
	if n > 0 {
		dst := unsafe.Slice((*byte)(content), n)
		copy(dst, data)
	}
	*(*byte)(unsafe.Add(content, n)) = 0

	return content
}

// HeaderOf recovers the Header belonging to a content pointer previously
// returned by New or Empty.
func HeaderOf(content unsafe.Pointer) *Header {
	return (*Header)(unsafe.Add(content, -int(headerSize)))
}

// emptyStorage is the single static payload for the zero-length byte
// string (invariant I5 of the interning spec: the empty string is never
// arena-allocated, and all empty-string handles alias this pointer). The
// struct's declaration order is load-bearing: Go lays out struct fields
// in source order with only alignment padding in between, so nul sits
// exactly headerSize bytes after hdr, the same relationship New
// establishes between an arena-allocated header and its content.
var emptyStorage struct {
	hdr Header
	nul byte
}

// Empty returns the content pointer for the process-wide empty-string
// payload, writing hash into its header on every call.
func Empty(hash uint64) unsafe.Pointer {
	emptyStorage.hdr = Header{Hash: hash, Len: 0}
	return unsafe.Pointer(&emptyStorage.nul)
}
