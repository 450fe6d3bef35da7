package types

// Replicas maps a hash range to all nodes that store keys within that range.
//
// The first node in Nodes is the primary node, the following nodes are
// replication nodes. Careful: multiple hash ranges may apply to each node;
// consumers need to consider every Replicas record of a partition pass, not
// just the first one mentioning a node.
type Replicas[T comparable] struct {
	// HashRange is the inclusive range of key positions stored on Nodes.
	HashRange Range `json:"hash_range"`

	// Nodes lists every node owning HashRange, primary first. The list is
	// free of duplicates and at most min(replicas+1, real node count) long.
	Nodes []T `json:"nodes"`
}

// Instruction tells a replication executor to populate one target node:
// for keys whose hash falls in HashRange, consult Sources in order and copy
// from the first reachable one.
//
// Two instructions with identical HashRange and Sources are interchangeable.
type Instruction[T comparable] struct {
	// HashRange is the inclusive range of key positions to copy.
	HashRange Range `json:"hash_range"`

	// Sources lists candidate source nodes in precedence order. Only nodes
	// present in the availability filter of the planning call appear here.
	Sources []T `json:"sources"`
}
