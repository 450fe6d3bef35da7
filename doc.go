// Package hashring provides consistent hashing with virtual nodes plus the
// planning primitives needed to coordinate replication across topology
// changes: partitioning the 64-bit hash space into ownership ranges, and
// computing the minimal set of copy instructions to move between two ring
// states.
//
// # Quick Start
//
// Build a ring, query owners and inspect the ownership ranges:
//
//	// 1 replica per key (each key lives on 2 nodes), 150 virtual nodes per node
//	ring := hashring.New[string](1, 150)
//	ring.BatchAdd([]string{"10.0.0.1", "10.0.0.2", "10.0.0.3"})
//
//	owners := ring.GetString("user:42") // ["10.0.0.2", "10.0.0.1"]
//	ranges := ring.HashRanges()         // full partition of [0, 2^64-1]
//
// # Migration Planning
//
// Given a previous ring state, FindSources returns coalesced copy
// instructions for one target node. The library only produces the plan; an
// external executor fetches the keys:
//
//	previous := hashring.New[string](1, 150)
//	previous.BatchAdd([]string{"10.0.0.1", "10.0.0.2", "10.0.0.3"})
//
//	current := hashring.New[string](1, 150)
//	current.BatchAdd([]string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"})
//
//	plan := current.FindSources("10.0.0.4", previous, previous.Nodes())
//	for _, ins := range plan {
//	    // copy keys hashing into ins.HashRange from the first reachable
//	    // node in ins.Sources to 10.0.0.4
//	}
//
// # Key Properties
//
//   - Deterministic: same nodes, seed and hasher always yield the same
//     placement, across calls and across process restarts
//   - Total: empty rings, absent targets and oversized replica counts
//     degrade to empty or clamped results instead of errors
//   - Pure: no I/O, no global state; rings may be shared read-only across
//     goroutines as long as nobody mutates them concurrently
//
// Hashing is pluggable via the hasher subpackage (XXH3 by default), and node
// identity is generic: any comparable type with a stable byte representation
// can be placed on the ring.
//
// See the examples/ directory for complete working examples.
package hashring
