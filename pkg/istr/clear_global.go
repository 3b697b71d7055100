//go:build istr_global_cache_clear

package istr

// ClearGlobalCache empties every shard's table. It exists solely so test
// suites can reset the shard table without restarting the process, and is
// compiled in only under the istr_global_cache_clear build tag —
// production binaries never link it.
//
// Handles issued before the call stay valid and keep their bytes: payload
// memory is never reclaimed, and each Handle's own pointer keeps it
// reachable. The shard table no longer returns them, so a later Intern of
// the same content that reaches a shard creates a new payload whose
// Handle does not compare equal to the old one.
//
// The per-P local caches are not cleared by this call. An Intern or
// Lookup served from a local cache that still holds a pre-clear entry
// returns the old Handle.
func ClearGlobalCache() {
	for _, s := range shards {
		s.clear()
	}
}
