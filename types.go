package hashring

import "github.com/Thomblin/hashring-coordinator/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `hashring`
// package, while still providing a convenient `hashring.Range`,
// `hashring.Logger`, etc. for users.
type (
	Range                     = types.Range
	Replicas[T comparable]    = types.Replicas[T]
	Instruction[T comparable] = types.Instruction[T]
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
