// Package istr is a process-wide byte-string interning service. Interning
// a byte slice returns a Handle: a small, comparable, process-lifetime
// value such that two handles are equal if and only if the underlying
// byte strings are equal, with the underlying bytes addressable in O(1)
// time and never moved or freed for the life of the process.
//
// The service is organized, bottom-up, as a compile-time-selected hash
// function (internal/hashfn), a never-freed bump arena (internal/arena)
// handing out fixed payload headers followed by content bytes
// (internal/payload), a 64-way sharded hash table providing the
// process-wide source of truth, and a per-P front cache (backed by
// internal/proclocal) that lets most Intern/Lookup calls avoid the shard
// lock entirely.
//
// © 2025 arena-cache authors. MIT License.
package istr
