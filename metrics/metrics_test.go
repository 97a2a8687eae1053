package metrics_test

import (
	"testing"

	"github.com/davidvella/nrsort/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *metrics.Registry {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "comparisons", Type: metrics.Counter})
	r.Register(metrics.Metric{Name: "size", Type: metrics.Gauge})
	return r
}

func TestRegistry_RecordCounter(t *testing.T) {
	r := newRegistry()

	r.RecordCounter("comparisons", 3, nil)
	r.RecordCounter("comparisons", 4, map[string]string{"pass": "2"})

	got := r.GetMetrics()
	require.Len(t, got["comparisons"], 2)
	assert.InDelta(t, 3.0, got["comparisons"][0].Value, 0)
	assert.Equal(t, "2", got["comparisons"][1].Labels["pass"])
	assert.InDelta(t, 7.0, r.Sum("comparisons"), 0)
}

func TestRegistry_RecordGaugeReplaces(t *testing.T) {
	r := newRegistry()

	r.RecordGauge("size", 10, nil)
	r.RecordGauge("size", 12, nil)

	got := r.GetMetrics()
	require.Len(t, got["size"], 1)
	assert.InDelta(t, 12.0, got["size"][0].Value, 0)
}

func TestRegistry_IgnoresUnknownAndMismatched(t *testing.T) {
	r := newRegistry()

	r.RecordCounter("missing", 1, nil)
	r.RecordCounter("size", 1, nil)
	r.RecordGauge("comparisons", 1, nil)

	assert.Empty(t, r.GetMetrics())
	assert.InDelta(t, 0.0, r.Sum("missing"), 0)
}

func TestRegistry_GetMetricsReturnsCopy(t *testing.T) {
	r := newRegistry()
	r.RecordCounter("comparisons", 1, nil)

	got := r.GetMetrics()
	got["comparisons"][0].Value = 99

	assert.InDelta(t, 1.0, r.Sum("comparisons"), 0)
}

func TestMetricType_String(t *testing.T) {
	assert.Equal(t, "counter", metrics.Counter.String())
	assert.Equal(t, "gauge", metrics.Gauge.String())
	assert.Equal(t, "unknown", metrics.MetricType(9).String())
}
