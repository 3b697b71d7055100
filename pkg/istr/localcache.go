package istr

import (
	"unsafe"

	"github.com/arcanehash/istr/internal/proclocal"
)

// localTable is the per-P front cache sitting in front of the shard
// table. It uses the same bucket-by-hash layout as shard, so a lookup
// that misses locally and falls through to the shard table reuses the
// exact same matching logic.
type localTable struct {
	buckets map[uint64][]unsafe.Pointer
}

func newLocalTable() *localTable {
	return &localTable{buckets: make(map[uint64][]unsafe.Pointer, 64)}
}

func (t *localTable) find(hash uint64, b []byte) (unsafe.Pointer, bool) {
	for _, ptr := range t.buckets[hash] {
		if payloadMatches(ptr, b) {
			return ptr, true
		}
	}
	return nil, false
}

func (t *localTable) insert(hash uint64, ptr unsafe.Pointer) {
	bucket := t.buckets[hash]
	for _, existing := range bucket {
		if existing == ptr {
			return
		}
	}
	t.buckets[hash] = append(bucket, ptr)
}

func (t *localTable) size() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}

func (t *localTable) clear() {
	t.buckets = make(map[uint64][]unsafe.Pointer, 64)
}

var localStore = proclocal.NewStore(func() *localTable {
	return newLocalTable()
})
