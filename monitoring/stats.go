package monitoring

import (
	"context"
	"strconv"
	"time"

	"github.com/davidvella/nrsort/mergesort"
	"github.com/davidvella/nrsort/metrics"
)

const (
	MetricSortsTotal       = "sorts_total"
	MetricPassesTotal      = "sort_passes_total"
	MetricComparisonsTotal = "sort_comparisons_total"
	MetricCorrectiveTotal  = "sort_corrective_merges_total"
	MetricLatencyMicros    = "sort_latency_us"
	MetricInputSize        = "sort_input_size"
	MetricErrorsTotal      = "errors"
)

// Stats collects and reports sort statistics.
type Stats struct {
	registry *metrics.Registry
	logger   *Logger
}

func NewStats(registry *metrics.Registry, logger *Logger) *Stats {
	for _, m := range []metrics.Metric{
		{Name: MetricSortsTotal, Type: metrics.Counter, Description: "Total number of completed sorts"},
		{Name: MetricPassesTotal, Type: metrics.Counter, Description: "Total number of merge passes"},
		{Name: MetricComparisonsTotal, Type: metrics.Counter, Description: "Total number of element comparisons"},
		{Name: MetricCorrectiveTotal, Type: metrics.Counter, Description: "Total number of corrective remainder merges"},
		{Name: MetricLatencyMicros, Type: metrics.Counter, Description: "Sort latency in microseconds"},
		{Name: MetricInputSize, Type: metrics.Gauge, Description: "Number of elements in the last sorted input"},
		{Name: MetricErrorsTotal, Type: metrics.Counter, Description: "Total number of errors by type"},
	} {
		registry.Register(m)
	}

	return &Stats{
		registry: registry,
		logger:   logger,
	}
}

// Observe records a completed merge pass. It matches mergesort.Observer once
// bound to a context.
func (s *Stats) Observe(ctx context.Context, pass mergesort.Pass) {
	labels := map[string]string{
		"partition_size": strconv.Itoa(pass.PartitionSize),
	}
	s.registry.RecordCounter(MetricPassesTotal, 1, labels)
	s.registry.RecordCounter(MetricComparisonsTotal, float64(pass.Comparisons), labels)
	if pass.Corrective {
		s.registry.RecordCounter(MetricCorrectiveTotal, 1, labels)
	}

	s.logger.Log(ctx, DEBUG, "pass_completed", "merge pass completed", map[string]any{
		"pass":           pass.Number,
		"partition_size": pass.PartitionSize,
		"windows":        pass.Windows,
		"corrective":     pass.Corrective,
		"comparisons":    pass.Comparisons,
	})
}

func (s *Stats) RecordSort(ctx context.Context, size int, duration time.Duration) {
	s.registry.RecordCounter(MetricSortsTotal, 1, nil)
	s.registry.RecordCounter(MetricLatencyMicros, float64(duration.Microseconds()), nil)
	s.registry.RecordGauge(MetricInputSize, float64(size), nil)

	s.logger.Log(ctx, INFO, "sort_completed", "sort completed", map[string]any{
		"size":        size,
		"duration_us": duration.Microseconds(),
	})
}

func (s *Stats) RecordError(ctx context.Context, kind string) {
	s.registry.RecordCounter(MetricErrorsTotal, 1, map[string]string{
		"error": kind,
	})
}

// Report logs the totals of every registered metric at DEBUG.
func (s *Stats) Report(ctx context.Context) {
	if !s.logger.Enabled(DEBUG) {
		return
	}
	details := make(map[string]any)
	for name := range s.registry.GetMetrics() {
		details[name] = s.registry.Sum(name)
	}
	s.logger.Log(ctx, DEBUG, "metrics_snapshot", "metrics snapshot", details)
}
