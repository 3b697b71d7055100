package istr

import (
	"github.com/arcanehash/istr/internal/hashfn"
	"github.com/arcanehash/istr/internal/payload"
)

var emptyHandle = Handle{ptr: payload.Empty(hashfn.EmptyHash)}

// Intern returns the canonical Handle for b, creating one if these exact
// bytes have never been interned before anywhere in the process. The
// calling goroutine's per-P local cache is consulted first and populated
// on a miss, so repeated interning of the same bytes from the same P
// after the first call never touches a shard lock.
func Intern(b []byte) Handle {
	if len(b) == 0 {
		return emptyHandle
	}
	hash := hashfn.Hash(b)

	local, release := localStore.Borrow()
	defer release()

	if ptr, ok := (*local).find(hash, b); ok {
		metricsSinkGlobal.localHit()
		return Handle{ptr: ptr}
	}
	metricsSinkGlobal.localMiss()

	ptr := shardFor(hash).intern(hash, b)
	(*local).insert(hash, ptr)
	return Handle{ptr: ptr}
}

// InternSkipLocal behaves like Intern but never consults or populates the
// calling P's local cache — useful for one-shot interning where polluting
// the front cache with a key that won't be seen again would only waste
// memory.
func InternSkipLocal(b []byte) Handle {
	if len(b) == 0 {
		return emptyHandle
	}
	hash := hashfn.Hash(b)
	return Handle{ptr: shardFor(hash).intern(hash, b)}
}

// Lookup returns the Handle for b if it has already been interned by any
// goroutine, without creating one. Like Intern, it is local-cache-aware.
func Lookup(b []byte) (Handle, bool) {
	if len(b) == 0 {
		return emptyHandle, true
	}
	hash := hashfn.Hash(b)

	local, release := localStore.Borrow()
	defer release()

	if ptr, ok := (*local).find(hash, b); ok {
		metricsSinkGlobal.localHit()
		return Handle{ptr: ptr}, true
	}
	metricsSinkGlobal.localMiss()

	ptr, ok := shardFor(hash).lookup(hash, b)
	if !ok {
		return Handle{}, false
	}
	(*local).insert(hash, ptr)
	return Handle{ptr: ptr}, true
}

// LookupSkipLocal behaves like Lookup but bypasses the local cache
// entirely, both for reading and for populating it.
func LookupSkipLocal(b []byte) (Handle, bool) {
	if len(b) == 0 {
		return emptyHandle, true
	}
	hash := hashfn.Hash(b)
	ptr, ok := shardFor(hash).lookup(hash, b)
	if !ok {
		return Handle{}, false
	}
	return Handle{ptr: ptr}, true
}

// Size returns the total number of distinct byte strings interned across
// all shards. It locks each shard in turn; the result is not a
// consistent snapshot under concurrent mutation, only an instantaneous
// lower/upper bound as of when each shard was visited.
func Size() int {
	n := 0
	for _, s := range shards {
		n += s.size()
	}
	return n
}

// LocalCacheSize returns the number of entries in the calling P's local
// front cache.
func LocalCacheSize() int {
	local, release := localStore.Borrow()
	defer release()
	return (*local).size()
}

// ClearLocalCache empties the calling P's local front cache. Entries
// already interned remain reachable through the global shard table; this
// only affects how quickly the caller's own subsequent lookups hit a
// shard lock again.
func ClearLocalCache() {
	local, release := localStore.Borrow()
	defer release()
	(*local).clear()
}
