package hashring

import (
	"encoding/binary"
	"slices"

	"github.com/Thomblin/hashring-coordinator/hasher"
	"github.com/Thomblin/hashring-coordinator/internal/logger"
	"github.com/Thomblin/hashring-coordinator/internal/metrics"
	"github.com/Thomblin/hashring-coordinator/types"
)

// Ring implements a consistent hash ring with virtual nodes.
//
// The ring maps keys to nodes using consistent hashing, which provides
// stable assignments with minimal key movement during membership changes.
// Each real node is represented by a configurable number of virtual nodes
// to smooth key distribution.
//
// The node type T must be comparable and must have a stable byte
// representation (see WithNodeKey). Queries never mutate the ring, so a
// ring may be shared read-only across goroutines; mutations require
// exclusive access.
type Ring[T comparable] struct {
	// entries contains all virtual nodes on the ring, sorted by position
	entries []ringEntry[T]

	// nodes holds the unique list of real nodes, in first-added order
	nodes []T

	// replicas is the number of copies stored per key beyond the primary
	replicas int

	// vnodes is the number of virtual nodes per real node
	vnodes int

	// seed for the hash strategy (0 means unseeded)
	seed uint64

	hasher  hasher.Hasher
	nodeKey func(T) []byte
	logger  types.Logger
	metrics types.MetricsCollector
}

// ringEntry represents a virtual node on the hash ring.
type ringEntry[T comparable] struct {
	position     uint64 // Position on the ring
	node         T      // Real node owning this virtual node
	virtualIndex int    // Index of the virtual node within its real node
}

// Entry is one virtual placement of a real node, as exposed by Entries.
type Entry[T comparable] struct {
	// Position is the entry's location on the 64-bit ring.
	Position uint64

	// Node is the real node this virtual node belongs to.
	Node T

	// VirtualIndex distinguishes the virtual nodes of one real node.
	VirtualIndex int
}

// New creates a consistent hash ring.
//
// Parameters:
//   - replicas: Number of nodes storing copies of each key beyond the
//     primary (0 stores each key exactly once)
//   - virtualNodes: Number of virtual nodes per real node (higher = more
//     even key distribution, more planning effort; clamped to at least 1)
//   - opts: Optional configuration (WithHasher, WithSeed, WithNodeKey, ...)
//
// Returns:
//   - *Ring[T]: Initialized empty ring
//
// Example:
//
//	ring := hashring.New[string](2, 200, hashring.WithSeed[string](12345))
//	ring.BatchAdd(nodes)
func New[T comparable](replicas, virtualNodes int, opts ...Option[T]) *Ring[T] {
	r := &Ring[T]{
		replicas: max(replicas, 0),
		vnodes:   max(virtualNodes, 1),
		hasher:   hasher.Default(),
		nodeKey:  defaultNodeKey[T],
		logger:   logger.NewNop(),
		metrics:  metrics.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add places node on the ring, represented by the configured number of
// virtual nodes. Adding a node that is already a member is a no-op, so the
// ring always holds exactly Len()*virtualNodes entries.
func (r *Ring[T]) Add(node T) {
	if !r.addVirtualNodes(node) {
		return
	}
	r.sortEntries()
}

// BatchAdd places all given nodes on the ring, sorting once after the bulk
// insert. Prefer this over repeated Add calls when deploying a full cluster.
func (r *Ring[T]) BatchAdd(nodes []T) {
	added := false
	for _, node := range nodes {
		if r.addVirtualNodes(node) {
			added = true
		}
	}
	if added {
		r.sortEntries()
	}
}

// Remove deletes every virtual node belonging to node. Removing a node that
// is not a member is a no-op.
func (r *Ring[T]) Remove(node T) {
	r.entries = slices.DeleteFunc(r.entries, func(e ringEntry[T]) bool {
		return e.node == node
	})
	r.nodes = slices.DeleteFunc(r.nodes, func(n T) bool {
		return n == node
	})
}

// Len returns the number of real nodes on the ring.
func (r *Ring[T]) Len() int {
	return len(r.nodes)
}

// VirtualLen returns the total number of virtual nodes on the ring.
func (r *Ring[T]) VirtualLen() int {
	return len(r.entries)
}

// IsEmpty reports whether the ring has no nodes.
func (r *Ring[T]) IsEmpty() bool {
	return len(r.entries) == 0
}

// Replicas returns the replica count the ring was created with.
func (r *Ring[T]) Replicas() int {
	return r.replicas
}

// Nodes returns the unique real nodes on the ring in first-added order.
func (r *Ring[T]) Nodes() []T {
	// Return a copy to avoid external mutation
	return slices.Clone(r.nodes)
}

// Entries returns a snapshot of all virtual nodes in ascending position
// order.
func (r *Ring[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], len(r.entries))
	for i, e := range r.entries {
		entries[i] = Entry[T]{Position: e.position, Node: e.node, VirtualIndex: e.virtualIndex}
	}

	return entries
}

// Get returns all real nodes responsible for key, primary first, using the
// ring's replica count. Returns an empty slice if the ring is empty.
func (r *Ring[T]) Get(key []byte) []T {
	return r.GetWithReplicas(key, r.replicas)
}

// GetString is Get for string keys.
func (r *Ring[T]) GetString(key string) []T {
	return r.Get([]byte(key))
}

// GetWithReplicas returns the replicas+1 distinct real nodes responsible for
// key, primary first.
//
// The primary is the owner of the first virtual node at or after the key's
// position (wrapping past the highest position to the first entry). Replica
// owners are collected walking forward, skipping virtual nodes of real nodes
// already collected. The result is clamped to the real node count, so asking
// for more replicas than the ring has nodes returns every node exactly once.
func (r *Ring[T]) GetWithReplicas(key []byte, replicas int) []T {
	if len(r.entries) == 0 {
		return nil
	}

	return r.ownersFrom(r.search(r.Position(key)), replicas)
}

// Position returns the ring position key hashes to under the ring's seed.
func (r *Ring[T]) Position(key []byte) uint64 {
	return r.hasher.Sum64(key, r.seed)
}

// addVirtualNodes inserts the virtual nodes for one real node without
// re-sorting. It reports whether the node was new.
func (r *Ring[T]) addVirtualNodes(node T) bool {
	if slices.Contains(r.nodes, node) {
		return false
	}

	// Fold the node key first, then each virtual index using the previous
	// hash as seed. This keeps per-entry hashing free of intermediate
	// concatenated keys while staying stable across processes.
	base := r.hasher.Sum64(r.nodeKey(node), r.seed)
	for i := range r.vnodes {
		var ib [8]byte
		binary.LittleEndian.PutUint64(ib[:], uint64(i)) //nolint:gosec

		r.entries = append(r.entries, ringEntry[T]{
			position:     r.hasher.Sum64(ib[:], base),
			node:         node,
			virtualIndex: i,
		})
	}
	r.nodes = append(r.nodes, node)

	return true
}

// sortEntries orders the entries by position for binary search. Position
// ties are broken arbitrarily; the hash strategy is expected to make them
// negligible.
func (r *Ring[T]) sortEntries() {
	slices.SortFunc(r.entries, func(a, b ringEntry[T]) int {
		if a.position < b.position {
			return -1
		}
		if a.position > b.position {
			return 1
		}

		return 0
	})
}

// search returns the index of the first entry with position >= target,
// wrapping to 0 when target exceeds every position.
func (r *Ring[T]) search(target uint64) int {
	idx, _ := slices.BinarySearchFunc(r.entries, target, func(e ringEntry[T], t uint64) int {
		if e.position < t {
			return -1
		}
		if e.position > t {
			return 1
		}

		return 0
	})

	if idx >= len(r.entries) {
		idx = 0
	}

	return idx
}

// ownersFrom collects min(replicas+1, Len()) distinct real nodes walking
// forward from the entry at start, preserving first-encountered order.
func (r *Ring[T]) ownersFrom(start, replicas int) []T {
	limit := min(max(replicas, 0)+1, len(r.nodes))

	owners := make([]T, 0, limit)
	for i := 0; i < len(r.entries) && len(owners) < limit; i++ {
		node := r.entries[(start+i)%len(r.entries)].node
		if !slices.Contains(owners, node) {
			owners = append(owners, node)
		}
	}

	return owners
}

// hashNodes folds an ordered node sequence into a single 64-bit value.
// The fold is order-sensitive: two different orderings of the same nodes
// produce different values, since source order encodes precedence.
func (r *Ring[T]) hashNodes(nodes []T) uint64 {
	h := r.seed
	for _, node := range nodes {
		h = r.hasher.Sum64(r.nodeKey(node), h)
	}

	return h
}
