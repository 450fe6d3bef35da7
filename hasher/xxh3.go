package hasher

import "github.com/zeebo/xxh3"

// XXH3 hashes with the XXH3 algorithm.
//
// XXH3 supports native seeding, so seeded and unseeded hashing have the same
// performance profile. This is the default strategy.
type XXH3 struct{}

var _ Hasher = XXH3{}

// Sum64 returns the XXH3 hash of data under seed.
func (XXH3) Sum64(data []byte, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashSeed(data, seed)
	}

	return xxh3.Hash(data)
}
