package istr

import (
	"bytes"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/arcanehash/istr/internal/arena"
	"github.com/arcanehash/istr/internal/fatal"
	"github.com/arcanehash/istr/internal/payload"
	"github.com/arcanehash/istr/internal/proclocal"
)

const (
	numShards = 64
	// shardShift takes the top bits of the hash so that shard selection
	// and in-shard bucketing (which uses the low bits via Go's map) draw
	// from disjoint bit ranges and don't correlate.
	shardShift = 32
	// cacheLinePad keeps adjacent shards off the same cache line under
	// concurrent access from different goroutines.
	cacheLinePad = 64
)

type shard struct {
	idx   int
	mu    sync.Mutex
	table map[uint64][]unsafe.Pointer
	_     [cacheLinePad]byte
}

var shards [numShards]*shard

var arenaStore = proclocal.NewStore(func() *arena.Chain {
	c := arena.NewChain()
	c.OnGrow = func(newSize uintptr) {
		fatal.Logger().Debug("arena: grew block", zap.Uintptr("new_size", newSize))
	}
	return c
})

func init() {
	for i := range shards {
		shards[i] = &shard{idx: i, table: make(map[uint64][]unsafe.Pointer, 16)}
	}
}

func shardFor(hash uint64) *shard {
	idx := (hash >> shardShift) & (numShards - 1)
	return shards[idx]
}

func payloadMatches(ptr unsafe.Pointer, b []byte) bool {
	hdr := payload.HeaderOf(ptr)
	if int(hdr.Len) != len(b) {
		return false
	}
	data := unsafe.Slice((*byte)(ptr), hdr.Len)
	return bytes.Equal(data, b)
}

// find scans a shard's bucket for hash, returning the payload whose bytes
// equal b if present. Caller must hold s.mu.
func (s *shard) find(hash uint64, b []byte) (unsafe.Pointer, bool) {
	for _, ptr := range s.table[hash] {
		if payloadMatches(ptr, b) {
			return ptr, true
		}
	}
	return nil, false
}

func allocPayload(hash uint64, b []byte) unsafe.Pointer {
	chain, release := arenaStore.Borrow()
	defer release()
	ptr := payload.New(*chain, hash, b)
	arenaBytesMirror.Add(int64(len(b)) + 1)
	return ptr
}

// intern returns the canonical payload pointer for (hash, b), creating
// one if this is the first time these exact bytes have been seen
// anywhere in the process.
func (s *shard) intern(hash uint64, b []byte) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ptr, ok := s.find(hash, b); ok {
		metricsSinkGlobal.shardHit(s.idx)
		return ptr
	}
	metricsSinkGlobal.shardMiss(s.idx)
	ptr := allocPayload(hash, b)
	s.table[hash] = append(s.table[hash], ptr)
	metricsSinkGlobal.internNew()
	return ptr
}

// lookup returns the canonical payload pointer for (hash, b) if it has
// already been interned, without creating one.
func (s *shard) lookup(hash uint64, b []byte) (unsafe.Pointer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ptr, ok := s.find(hash, b)
	if ok {
		metricsSinkGlobal.shardHit(s.idx)
	} else {
		metricsSinkGlobal.shardMiss(s.idx)
	}
	return ptr, ok
}

func (s *shard) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, bucket := range s.table {
		n += len(bucket)
	}
	return n
}

func (s *shard) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = make(map[uint64][]unsafe.Pointer, 16)
}
