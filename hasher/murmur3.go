package hasher

import "github.com/spaolacci/murmur3"

// Murmur3 hashes with the 64-bit half of MurmurHash3.
//
// Murmur3 seeds are 32 bits wide; the high half of the ring seed is folded
// into the low half so that distinct 64-bit seeds keep producing distinct
// placements.
type Murmur3 struct{}

var _ Hasher = Murmur3{}

// Sum64 returns the murmur3 hash of data under seed.
func (Murmur3) Sum64(data []byte, seed uint64) uint64 {
	if seed != 0 {
		return murmur3.Sum64WithSeed(data, uint32(seed^(seed>>32)))
	}

	return murmur3.Sum64(data)
}
