package hashring

import (
	"fmt"

	"github.com/Thomblin/hashring-coordinator/hasher"
	"github.com/Thomblin/hashring-coordinator/types"
)

// Option configures a Ring at construction time.
type Option[T comparable] func(*Ring[T])

// WithHasher sets the hash strategy used for node placement, key lookups and
// instruction coalescing.
//
// Changing the hasher after nodes are already placed (by building a new ring
// with a different strategy) invalidates all prior placements; every ring
// participating in one migration plan must use the same hasher and seed.
//
// Parameters:
//   - h: Hash strategy (defaults to hasher.XXH3)
//
// Returns:
//   - Option[T]: Functional option for New
//
// Example:
//
//	ring := hashring.New[string](1, 150, hashring.WithHasher[string](hasher.Murmur3{}))
func WithHasher[T comparable](h hasher.Hasher) Option[T] {
	return func(r *Ring[T]) {
		r.hasher = h
	}
}

// WithSeed sets the hash seed. Rings with different seeds place the same
// nodes at unrelated positions, so multiple independent rings can coexist in
// one process.
//
// Parameters:
//   - seed: Seed value (0 means unseeded)
//
// Returns:
//   - Option[T]: Functional option for New
func WithSeed[T comparable](seed uint64) Option[T] {
	return func(r *Ring[T]) {
		r.seed = seed
	}
}

// WithNodeKey sets the function rendering a node into the stable byte key
// that is hashed for placement.
//
// The default renders the node with fmt.Append. That is stable for strings,
// integers and flat structs of such fields; node types containing pointers,
// maps or other non-deterministic formatting should supply their own key
// function.
//
// Parameters:
//   - key: Node key function; must return equal bytes for equal nodes
//
// Returns:
//   - Option[T]: Functional option for New
//
// Example:
//
//	ring := hashring.New(1, 150, hashring.WithNodeKey(func(n Node) []byte {
//	    return []byte(n.Addr)
//	}))
func WithNodeKey[T comparable](key func(T) []byte) Option[T] {
	return func(r *Ring[T]) {
		r.nodeKey = key
	}
}

// WithLogger sets a structured logger. Planning operations emit Debug-level
// summaries only; the default discards everything.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option[T]: Functional option for New
func WithLogger[T comparable](logger types.Logger) Option[T] {
	return func(r *Ring[T]) {
		r.logger = logger
	}
}

// WithMetrics sets a metrics collector for partition and planning
// observations. The default discards everything.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option[T]: Functional option for New
func WithMetrics[T comparable](metrics types.MetricsCollector) Option[T] {
	return func(r *Ring[T]) {
		r.metrics = metrics
	}
}

// defaultNodeKey renders a node with fmt.Append, the byte equivalent of its
// debug formatting.
func defaultNodeKey[T comparable](node T) []byte {
	return fmt.Append(nil, node)
}
