package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewPrometheus(registry, "testns")

	collector.RecordHashRanges(12)
	collector.RecordHashRanges(12)
	collector.RecordMigrationPlan(3, 0.002)

	families, err := registry.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	ranges, ok := byName["testns_partition_ranges"]
	require.True(t, ok, "partition ranges histogram not registered")
	require.EqualValues(t, 2, ranges.GetMetric()[0].GetHistogram().GetSampleCount())
	require.EqualValues(t, 24, ranges.GetMetric()[0].GetHistogram().GetSampleSum())

	plans, ok := byName["testns_migration_plans_total"]
	require.True(t, ok, "plan counter not registered")
	require.EqualValues(t, 1, plans.GetMetric()[0].GetCounter().GetValue())

	size, ok := byName["testns_migration_plan_instructions"]
	require.True(t, ok, "plan size histogram not registered")
	require.EqualValues(t, 3, size.GetMetric()[0].GetHistogram().GetSampleSum())

	duration, ok := byName["testns_migration_plan_duration_seconds"]
	require.True(t, ok, "plan duration histogram not registered")
	require.EqualValues(t, 1, duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewPrometheus(registry, "")
	collector.RecordHashRanges(1)

	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "hashring_partition_ranges", families[0].GetName())
}

func TestPrometheusCollector_SharedRegisterer(t *testing.T) {
	// Two collectors on one registerer: the second registration hits
	// AlreadyRegisteredError and must not panic.
	registry := prometheus.NewRegistry()

	first := NewPrometheus(registry, "shared")
	second := NewPrometheus(registry, "shared")

	require.NotPanics(t, func() {
		first.RecordMigrationPlan(1, 0.001)
		second.RecordMigrationPlan(2, 0.001)
	})
}

func TestNewNop(t *testing.T) {
	collector := NewNop()

	require.NotPanics(t, func() {
		collector.RecordHashRanges(5)
		collector.RecordMigrationPlan(2, 0.1)
	})
}
