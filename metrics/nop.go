package metrics

import (
	internal "github.com/Thomblin/hashring-coordinator/internal/metrics"
	"github.com/Thomblin/hashring-coordinator/types"
)

// NewNop returns a metrics collector that discards every observation.
//
// Returns:
//   - types.MetricsCollector: The no-op collector used by default
func NewNop() types.MetricsCollector {
	return internal.NewNop()
}
