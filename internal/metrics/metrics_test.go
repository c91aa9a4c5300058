package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSearch(time.Millisecond, 12)
	m.ObserveSearch(time.Millisecond, 0)
	m.SelectionChanged("toggle")
	m.SelectionChanged("toggle")
	m.SelectionChanged("reset")
	m.Exported()
	m.ObserveRPC("/coalition.v1.CoalitionService/GetStatus", "ok", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.selectionChanges.WithLabelValues("toggle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selectionChanges.WithLabelValues("reset")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/coalition.v1.CoalitionService/GetStatus", "ok")))

	count, err := testutil.GatherAndCount(reg, "coalition_search_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSearch(time.Second, 1)
		m.SelectionChanged("add")
		m.Exported()
		m.ObserveRPC("p", "ok", time.Second)
	})
}
