// Package hashfn exposes the single pure hash function the rest of the
// interning service is built around. Exactly one implementation is linked
// into a given binary, chosen at compile time by build tag — never at
// runtime — so that hashfn.EmptyHash can be a real Go constant instead of
// a value computed on first use.
package hashfn

// Hash computes the 64-bit digest of b. It is a pure function: equal byte
// slices always produce equal digests, and the digest does not depend on
// process state.
func Hash(b []byte) uint64 {
	return hash(b)
}
