package istr

// container.go provides thin downstream container types over Handle.
// Go's built-in map type does not accept a pluggable hash function, so
// these bucket entries by Handle.StoredHash() directly — the closest
// available emulation of a "no-op hasher" container: the expensive part
// (hashing the string's bytes) never happens twice, only the cheap,
// already-computed uint64 is ever hashed again, by Go's own map runtime.

type mapEntry[V any] struct {
	key Handle
	val V
}

// Map is a Handle-keyed container that reuses each key's stored hash
// instead of rehashing its content.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]mapEntry[V])}
}

// Get returns the value associated with k, if any.
func (m *Map[V]) Get(k Handle) (V, bool) {
	for _, e := range m.buckets[k.StoredHash()] {
		if e.key == k {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Set associates v with k, replacing any previous value.
func (m *Map[V]) Set(k Handle, v V) {
	h := k.StoredHash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].key == k {
			bucket[i].val = v
			return
		}
	}
	m.buckets[h] = append(bucket, mapEntry[V]{key: k, val: v})
}

// Delete removes k, if present.
func (m *Map[V]) Delete(k Handle) {
	h := k.StoredHash()
	bucket := m.buckets[h]
	for i, e := range bucket {
		if e.key == k {
			m.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Len returns the number of entries currently stored.
func (m *Map[V]) Len() int {
	n := 0
	for _, bucket := range m.buckets {
		n += len(bucket)
	}
	return n
}

// Set is a Handle-keyed set built on Map.
type Set struct {
	m *Map[struct{}]
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{m: NewMap[struct{}]()}
}

// Add inserts h into the set.
func (s *Set) Add(h Handle) { s.m.Set(h, struct{}{}) }

// Contains reports whether h is in the set.
func (s *Set) Contains(h Handle) bool {
	_, ok := s.m.Get(h)
	return ok
}

// Remove removes h from the set, if present.
func (s *Set) Remove(h Handle) { s.m.Delete(h) }

// Len returns the number of elements in the set.
func (s *Set) Len() int { return s.m.Len() }
