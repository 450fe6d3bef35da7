package hashring

import (
	"math"
	"slices"

	"github.com/Thomblin/hashring-coordinator/types"
)

// HashRanges partitions the full 64-bit hash space into contiguous ranges,
// each labeled with its ordered owner list.
//
// Every virtual node is the right edge of the range starting just past the
// previous virtual node's position; the very first range starts past the
// highest position on the ring, since the ring is circular. Owners are the
// min(replicas+1, Len()) distinct real nodes found walking forward from the
// owning virtual node. The boundary range wrapping past the numeric maximum
// is emitted as two records, [left+1, max] and [0, right], with identical
// owners.
//
// Records follow ring traversal order, not sorted range order. Together the
// ranges cover [0, math.MaxUint64] exactly once per point.
//
// Returns:
//   - []types.Replicas[T]: One record per range ([0, max] owned by the sole
//     node when only one real node is on the ring; empty for an empty ring)
func (r *Ring[T]) HashRanges() []types.Replicas[T] {
	setup := r.hashRanges()
	r.metrics.RecordHashRanges(len(setup))

	return setup
}

func (r *Ring[T]) hashRanges() []types.Replicas[T] {
	if len(r.entries) == 0 {
		return nil
	}

	full := types.Range{Start: 0, End: math.MaxUint64}
	if r.Len() == 1 {
		// Nothing to replicate to; the single node owns everything.
		return []types.Replicas[T]{{HashRange: full, Nodes: []T{r.entries[0].node}}}
	}

	setup := make([]types.Replicas[T], 0, len(r.entries)+1)

	left := r.entries[len(r.entries)-1]
	for i, right := range r.entries {
		owners := r.ownersFrom(i, r.replicas)

		if left.position > right.position {
			setup = append(setup,
				types.Replicas[T]{
					HashRange: types.Range{Start: left.position + 1, End: math.MaxUint64},
					Nodes:     owners,
				},
				types.Replicas[T]{
					HashRange: types.Range{Start: 0, End: right.position},
					Nodes:     slices.Clone(owners),
				},
			)
		} else {
			setup = append(setup, types.Replicas[T]{
				HashRange: types.Range{Start: left.position + 1, End: right.position},
				Nodes:     owners,
			})
		}

		left = right
	}

	return setup
}
