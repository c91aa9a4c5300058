// Package metrics exposes Prometheus instruments for the simulator.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coalition"

// Metrics holds the simulator and RPC instruments. A nil *Metrics records
// nothing, so callers need not check.
type Metrics struct {
	searches          prometheus.Counter
	searchDuration    prometheus.Histogram
	combinationsFound prometheus.Histogram
	selectionChanges  *prometheus.CounterVec
	exports           prometheus.Counter
	rpcRequests       *prometheus.CounterVec
	rpcDuration       *prometheus.HistogramVec
}

// New registers every instrument on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Coalition searches run.",
		}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent enumerating combinations.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		combinationsFound: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "combinations_found",
			Help:      "Qualifying combinations per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		selectionChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_changes_total",
			Help:      "Selection mutations by action.",
		}, []string{"action"}),
		exports: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Coalition reports exported.",
		}),
		rpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
}

// ObserveSearch records one combination search.
func (m *Metrics) ObserveSearch(elapsed time.Duration, found int) {
	if m == nil {
		return
	}
	m.searches.Inc()
	m.searchDuration.Observe(elapsed.Seconds())
	m.combinationsFound.Observe(float64(found))
}

// SelectionChanged counts a selection mutation such as "toggle" or "reset".
func (m *Metrics) SelectionChanged(action string) {
	if m == nil {
		return
	}
	m.selectionChanges.WithLabelValues(action).Inc()
}

// Exported counts one recorded report.
func (m *Metrics) Exported() {
	if m == nil {
		return
	}
	m.exports.Inc()
}

// ObserveRPC records one finished RPC. code is "ok" or a Connect code name.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}
