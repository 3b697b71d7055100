//go:build istr_global_cache_clear

package istr

import "testing"

func TestClearGlobalCacheEmptiesShards(t *testing.T) {
	Intern([]byte("about-to-be-wiped"))
	if Size() == 0 {
		t.Fatal("expected at least one interned entry before clearing")
	}
	ClearGlobalCache()
	if Size() != 0 {
		t.Fatalf("expected Size() == 0 after ClearGlobalCache, got %d", Size())
	}
}
