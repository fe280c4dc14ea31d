// Package metrics defines Prometheus metrics for gridpath.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/solver"
)

var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total searches by method and outcome",
		},
		[]string{"algorithm", "heuristic", "outcome"},
	)

	VisitedCells = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_visited_cells",
			Help:    "Cells visited per search",
			Buckets: prometheus.ExponentialBuckets(4, 2, 12),
		},
		[]string{"algorithm"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"algorithm"},
	)

	CacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_cache_requests_total",
			Help: "Solve cache lookups by result",
		},
		[]string{"result"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	StreamConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridpath_stream_connections",
			Help: "Active trace streaming WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		SearchesTotal, VisitedCells, SearchDuration,
		CacheRequests, RequestsTotal, RequestDuration,
		StreamConnections,
	)
}

// Outcome label values.
const (
	Found    = "found"
	NotFound = "not_found"
)

// Observe records one finished search.
func Observe(o solver.Outcome) {
	outcome := NotFound
	if o.Found() {
		outcome = Found
	}
	SearchesTotal.WithLabelValues(o.Method.Algorithm, o.Method.Heuristic, outcome).Inc()
	VisitedCells.WithLabelValues(o.Method.Algorithm).Observe(float64(len(o.Visited)))
	SearchDuration.WithLabelValues(o.Method.Algorithm).Observe(o.Duration.Seconds())
}
