// Package proclocal provides per-P scoped storage: the closest Go gets to
// thread-local storage given that goroutines are M:N scheduled onto OS
// threads rather than owning one each.
//
// The pinning primitive is the same one the standard library's sync.Pool
// uses internally (runtime_procPin/runtime_procUnpin, reached here via
// go:linkname exactly as sync/pool.go reaches it) — pinning a goroutine to
// its current P disables preemption for the duration, which is enough to
// make "the slot I'm about to touch" stable for the life of a Borrow.
package proclocal

import (
	"sync"
	_ "unsafe" // for go:linkname

	"github.com/arcanehash/istr/internal/fatal"
)

//go:linkname runtime_procPin sync.runtime_procPin
func runtime_procPin() int

//go:linkname runtime_procUnpin sync.runtime_procUnpin
func runtime_procUnpin()

// Slot holds one P's private instance of T plus the reentrancy guard.
type Slot[T any] struct {
	busy  bool
	Value T
}

// Store is a growable, per-P array of Slot[T]. The steady-state path
// (enough slots already allocated for the running GOMAXPROCS) is a single
// atomic load and no locking; growth only happens the first few times a
// previously-unseen P id is observed.
type Store[T any] struct {
	slots    atomicSlotSlice[T]
	growMu   sync.Mutex
	newValue func() T
}

// NewStore builds a Store whose slots are lazily populated by newValue.
func NewStore[T any](newValue func() T) *Store[T] {
	return &Store[T]{newValue: newValue}
}

func (s *Store[T]) slotFor(pid int) *Slot[T] {
	for {
		if p := s.slots.load(); p != nil && pid < len(p) {
			return p[pid]
		}
		s.grow(pid)
	}
}

func (s *Store[T]) grow(pid int) {
	s.growMu.Lock()
	defer s.growMu.Unlock()

	cur := s.slots.load()
	if pid < len(cur) {
		return
	}
	fresh := make([]*Slot[T], pid+1)
	copy(fresh, cur)
	for i := len(cur); i <= pid; i++ {
		fresh[i] = &Slot[T]{Value: s.newValue()}
	}
	s.slots.store(fresh)
}

// Borrow pins the calling goroutine to its current P and returns a pointer
// to that P's private T along with a release function the caller must
// invoke exactly once, typically via defer. A Borrow that is still open
// when the same P tries to Borrow again — which can only happen through
// reentrant use of the istr API from within an istr callback, a
// programming error the spec treats as fatal — aborts the process.
func (s *Store[T]) Borrow() (*T, func()) {
	pid := runtime_procPin()
	sl := s.slotFor(pid)
	if sl.busy {
		runtime_procUnpin()
		fatal.Abort("proclocal: reentrant borrow on the same P")
	}
	sl.busy = true
	return &sl.Value, func() {
		sl.busy = false
		runtime_procUnpin()
	}
}
