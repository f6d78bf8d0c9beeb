package infrastructure

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	require.NotNil(t, m.Registry())

	m.DatasetLoadsTotal.WithLabelValues("hit").Inc()
	m.DatasetLoadsTotal.WithLabelValues("hit").Inc()
	m.DatasetRecords.Set(42)
	m.ViewComputationsTotal.WithLabelValues("top_companies", "ok").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatasetLoadsTotal.WithLabelValues("hit")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.DatasetRecords))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ViewComputationsTotal.WithLabelValues("top_companies", "ok")))
}

func TestMetricsRegistryIsolated(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.DatasetRecords.Set(7)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DatasetRecords))
}
