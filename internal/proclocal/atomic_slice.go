package proclocal

import "sync/atomic"

// atomicSlotSlice is a tiny wrapper so Store[T] can hold an
// atomic.Pointer to a slice value (Go's atomic.Pointer is generic over
// the pointee, not over slice headers directly).
type atomicSlotSlice[T any] struct {
	p atomic.Pointer[[]*Slot[T]]
}

func (a *atomicSlotSlice[T]) load() []*Slot[T] {
	if p := a.p.Load(); p != nil {
		return *p
	}
	return nil
}

func (a *atomicSlotSlice[T]) store(v []*Slot[T]) {
	a.p.Store(&v)
}
