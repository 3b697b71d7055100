package hashfn

import "testing"

func TestEmptyHashMatchesHash(t *testing.T) {
	if got := Hash(nil); got != EmptyHash {
		t.Fatalf("Hash(nil) = %#x, want EmptyHash %#x", got, EmptyHash)
	}
	if got := Hash([]byte{}); got != EmptyHash {
		t.Fatalf("Hash([]byte{}) = %#x, want EmptyHash %#x", got, EmptyHash)
	}
}

func TestHashDeterministic(t *testing.T) {
	a := Hash([]byte("the quick brown fox"))
	b := Hash([]byte("the quick brown fox"))
	if a != b {
		t.Fatalf("hash not deterministic: %#x != %#x", a, b)
	}
}

func TestHashDistinguishesContent(t *testing.T) {
	if Hash([]byte("foo")) == Hash([]byte("bar")) {
		t.Fatalf("distinct inputs hashed to the same digest (possible but astronomically unlikely for these inputs)")
	}
}
