package hashring

import (
	"math"
	"slices"
	"time"

	"github.com/Thomblin/hashring-coordinator/types"
)

// FindSources computes, for one target node of this ring, all copy
// instructions needed to populate it from a previous ring state.
//
// The receiver is the desired topology; source describes where the keys
// currently live. This covers several scenarios:
//
//  1. Both rings cover the same deployment, with nodes that joined or left.
//  2. Both rings cover the same deployment, with some nodes currently
//     terminating (still available to sync from, but no longer owners).
//  3. The source ring is an original deployment and the receiver is its
//     replacement, so every key has to be copied across.
//
// The two partitions are intersected; for every sub-range newly owned by
// target, the previous owners are filtered to availableNodes (preserving
// precedence order) and emitted as one instruction. Sub-ranges whose
// filtered previous owners already include target are skipped, since the
// target holds that data. The result is coalesced with MergeInstructions.
//
// Parameters:
//   - target: Node to compute copy instructions for; if it is not a member
//     of this ring the result is empty (not an error)
//   - source: Ring describing the previous key placement; must use the same
//     hasher and seed as the receiver
//   - availableNodes: Allow-list of nodes reachable for copying (for
//     example, excludes nodes that already left)
//
// Returns:
//   - []types.Instruction[T]: Coalesced copy instructions; empty when
//     nothing needs to move
func (r *Ring[T]) FindSources(target T, source *Ring[T], availableNodes []T) []types.Instruction[T] {
	start := time.Now()

	from := source.HashRanges()
	to := r.HashRanges()

	var sources []types.Instruction[T]

	for _, needed := range to {
		if !slices.Contains(needed.Nodes, target) {
			continue
		}

		for _, supply := range from {
			rng, ok := needed.HashRange.Intersect(supply.HashRange)
			if !ok {
				continue
			}

			nodes := make([]T, 0, len(supply.Nodes))
			for _, node := range supply.Nodes {
				if slices.Contains(availableNodes, node) {
					nodes = append(nodes, node)
				}
			}

			// The target already stores this sub-range under the old
			// topology; no copy needed.
			if slices.Contains(nodes, target) {
				continue
			}

			sources = append(sources, types.Instruction[T]{HashRange: rng, Sources: nodes})
		}
	}

	merged := r.MergeInstructions(sources)

	r.metrics.RecordMigrationPlan(len(merged), time.Since(start).Seconds())
	r.logger.Debug("migration plan computed",
		"target", target,
		"sourceRanges", len(from),
		"targetRanges", len(to),
		"instructions", len(merged),
	)

	return merged
}

// MergeInstructions coalesces instructions so that adjacent ranges sharing
// an identical ordered source list become one range.
//
// Instructions are grouped by an order-sensitive hash of their source
// sequence; two different orderings of the same nodes are never merged,
// since order encodes source precedence. Within each group, ranges sorted
// by start are folded wherever one ends exactly where the next begins
// (ranges ending at the numeric maximum fold with nothing). Groups keep
// their first-seen relative order; consumers must treat output order as
// unspecified.
//
// Parameters:
//   - instructions: Instructions to coalesce (not mutated)
//
// Returns:
//   - []types.Instruction[T]: Coalesced instructions
func (r *Ring[T]) MergeInstructions(instructions []types.Instruction[T]) []types.Instruction[T] {
	sorted := slices.Clone(instructions)
	slices.SortStableFunc(sorted, func(a, b types.Instruction[T]) int {
		if a.HashRange.Start < b.HashRange.Start {
			return -1
		}
		if a.HashRange.Start > b.HashRange.Start {
			return 1
		}

		return 0
	})

	groups := make(map[uint64][]types.Instruction[T])
	order := make([]uint64, 0, len(sorted))

	for _, ins := range sorted {
		h := r.hashNodes(ins.Sources)
		if _, ok := groups[h]; !ok {
			order = append(order, h)
		}
		groups[h] = append(groups[h], ins)
	}

	combined := make([]types.Instruction[T], 0, len(sorted))

	for _, h := range order {
		group := groups[h]

		current := group[0]
		for _, next := range group[1:] {
			if current.HashRange.End < math.MaxUint64 && next.HashRange.Start == current.HashRange.End+1 {
				current.HashRange.End = next.HashRange.End
			} else {
				combined = append(combined, current)
				current = next
			}
		}
		combined = append(combined, current)
	}

	return combined
}
