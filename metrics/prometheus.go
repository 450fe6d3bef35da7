// Package metrics provides ready-made MetricsCollector implementations.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Thomblin/hashring-coordinator/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	partitionRanges prometheus.Histogram
	planDuration    prometheus.Histogram
	planSize        prometheus.Histogram
	planTotal       prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "hashring" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "hashring"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.partitionRanges = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "ranges",
			Help:      "Number of ownership records produced per partition pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		})

		p.planDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "migration",
			Name:      "plan_duration_seconds",
			Help:      "Time spent computing one migration plan in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		})

		p.planSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "migration",
			Name:      "plan_instructions",
			Help:      "Number of coalesced instructions emitted per migration plan.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		})

		p.planTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "migration",
			Name:      "plans_total",
			Help:      "Total migration planning calls.",
		})

		for _, c := range []prometheus.Collector{
			p.partitionRanges,
			p.planDuration,
			p.planSize,
			p.planTotal,
		} {
			// Tolerate duplicate registration so multiple rings can share
			// one registerer.
			if err := p.reg.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}

// RecordHashRanges records the number of ownership records of one partition
// pass.
func (p *PrometheusCollector) RecordHashRanges(count int) {
	p.ensureRegistered()
	p.partitionRanges.Observe(float64(count))
}

// RecordMigrationPlan records the outcome of one migration planning call.
func (p *PrometheusCollector) RecordMigrationPlan(instructions int, duration float64) {
	p.ensureRegistered()
	p.planTotal.Inc()
	p.planSize.Observe(float64(instructions))
	p.planDuration.Observe(duration)
}
