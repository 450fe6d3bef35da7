// Package metrics provides the default no-op metrics collector used when no
// collector is injected.
package metrics

import "github.com/Thomblin/hashring-coordinator/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordHashRanges discards the partition pass observation.
func (n *NopMetrics) RecordHashRanges(_ /* count */ int) {
	// No-op
}

// RecordMigrationPlan discards the migration plan observation.
func (n *NopMetrics) RecordMigrationPlan(_ /* instructions */ int, _ /* duration */ float64) {
	// No-op
}
