// Package types provides core type definitions and interfaces for the
// hashring-coordinator library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the root hashring package and its internal
// implementations.
//
// Key types:
//   - Range: Inclusive hash range on the 64-bit ring
//   - Replicas: Hash range together with its ordered owner nodes
//   - Instruction: Copy directive produced by migration planning
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
