package hasher

// Hasher computes 64-bit ring positions.
//
// Implementations must be pure functions: the same (data, seed) pair always
// yields the same value for the lifetime of the process and across process
// restarts. No collision-avoidance guarantee is made; callers needing
// negligible collisions must pick a hash function and virtual-node scheme
// accordingly.
//
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Sum64 returns the 64-bit hash of data under the given seed.
	Sum64(data []byte, seed uint64) uint64
}

// Default returns the hash strategy used when none is injected.
func Default() Hasher {
	return XXH3{}
}
