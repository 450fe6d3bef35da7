package hasher

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// XXHash64 hashes with the classic xxHash64 algorithm.
//
// xxHash64 has no seeded one-shot API, so a non-zero seed is fed into the
// digest ahead of the data.
type XXHash64 struct{}

var _ Hasher = XXHash64{}

// Sum64 returns the xxHash64 hash of data under seed.
func (XXHash64) Sum64(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(data)
	}

	var sb [8]byte
	binary.LittleEndian.PutUint64(sb[:], seed)

	d := xxhash.New()
	_, _ = d.Write(sb[:])
	_, _ = d.Write(data)

	return d.Sum64()
}
