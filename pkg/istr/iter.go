package istr

import "iter"

// Iter returns a sequence over every Handle interned so far, visiting
// shards in index order. Each shard is locked only while it is being
// visited — there is no global snapshot — so a concurrent Intern can be
// observed or missed depending on timing relative to the iterator
// reaching that shard, but the sequence never yields a torn or
// already-freed payload, since payloads are never mutated or freed once
// published into a shard's table.
func Iter() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for _, s := range shards {
			if !s.visitAll(yield) {
				return
			}
		}
	}
}

// visitAll locks s for the duration of iterating its bucket map and
// invokes yield for every payload it holds, stopping early if yield
// returns false. It returns false if the caller should stop entirely.
func (s *shard) visitAll(yield func(Handle) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bucket := range s.table {
		for _, ptr := range bucket {
			if !yield(Handle{ptr: ptr}) {
				return false
			}
		}
	}
	return true
}
