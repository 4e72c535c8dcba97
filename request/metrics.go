package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/milk9111/gridpath/request")

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_requests_total",
		Help: "Path requests delivered, by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Time spent inside a single path search",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10us to ~330ms
	}, []string{"algorithm"})

	searchExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_cells",
		Help:    "Cells expanded by a single path search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"algorithm"})

	requestWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_request_wait_seconds",
		Help:    "Time from enqueue to delivery of a path request",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_request_queue_depth",
		Help: "Path requests waiting for their search to start",
	})
)

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
