package payload

import (
	"testing"
	"unsafe"

	"github.com/arcanehash/istr/internal/arena"
)

func TestNewRoundTripsBytesAndNul(t *testing.T) {
	c := arena.NewChain()
	ptr := New(c, 0x1234, []byte("hello"))

	hdr := HeaderOf(ptr)
	if hdr.Hash != 0x1234 {
		t.Fatalf("hash = %#x, want 0x1234", hdr.Hash)
	}
	if hdr.Len != 5 {
		t.Fatalf("len = %d, want 5", hdr.Len)
	}

	data := unsafe.Slice((*byte)(ptr), 5)
	if string(data) != "hello" {
		t.Fatalf("content = %q, want %q", data, "hello")
	}
	nul := *(*byte)(unsafe.Add(ptr, 5))
	if nul != 0 {
		t.Fatalf("expected trailing NUL, got %d", nul)
	}
}

func TestEmptyPayloadHasZeroLen(t *testing.T) {
	ptr := Empty(0xdeadbeef)
	hdr := HeaderOf(ptr)
	if hdr.Len != 0 {
		t.Fatalf("len = %d, want 0", hdr.Len)
	}
	if hdr.Hash != 0xdeadbeef {
		t.Fatalf("hash = %#x, want 0xdeadbeef", hdr.Hash)
	}
	nul := *(*byte)(ptr)
	if nul != 0 {
		t.Fatalf("expected the content pointer itself to be the NUL byte for an empty payload")
	}
}

func TestNewProducesDistinctPointersForDistinctContent(t *testing.T) {
	c := arena.NewChain()
	a := New(c, 1, []byte("a"))
	b := New(c, 2, []byte("b"))
	if a == b {
		t.Fatal("expected distinct allocations for distinct payloads")
	}
}
