package types

// MetricsCollector defines methods for recording planning metrics.
//
// Implementations must be non-blocking and safe for concurrent use: a single
// ring may serve many planning calls in parallel.
type MetricsCollector interface {
	// RecordHashRanges records the number of ownership records produced by
	// one partition pass over a ring.
	RecordHashRanges(count int)

	// RecordMigrationPlan records the outcome of one migration planning call.
	//
	// Parameters:
	//   - instructions: Number of coalesced instructions emitted
	//   - duration: Planning time in seconds
	RecordMigrationPlan(instructions int, duration float64)
}
