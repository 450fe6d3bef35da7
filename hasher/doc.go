// Package hasher provides pluggable 64-bit hash strategies for ring
// placement.
//
// Every position on the ring, every key lookup and the grouping step of
// instruction coalescing go through a single Hasher instance injected into
// the ring. Changing the hasher (or its seed) after nodes are already placed
// invalidates all prior placement determinism, so pick one per deployment
// and keep it.
//
// Available strategies:
//   - XXH3: default, natively seeded, fastest on typical node keys
//   - Murmur3: murmur3 64-bit finalizer, for clusters standardized on it
//   - XXHash64: classic xxHash, seed folded through the digest
package hasher
