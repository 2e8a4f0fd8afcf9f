package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sparsenms_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sparsenms_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Suppression metrics
	suppressRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sparsenms_suppress_requests_total",
			Help: "Total number of suppression requests",
		},
		[]string{"algorithm", "status"},
	)

	suppressDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sparsenms_suppress_duration_seconds",
			Help:    "Suppression run duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"algorithm"},
	)

	suppressBoxesIn = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sparsenms_suppress_boxes_in",
			Help:    "Number of boxes per suppression request",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
	)

	suppressBoxesKept = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sparsenms_suppress_boxes_kept",
			Help:    "Number of boxes kept per suppression request",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
	)
)

// recordSuppression records metrics for one suppression run.
func recordSuppression(algorithm, status string, seconds float64, boxesIn, boxesKept int) {
	suppressRequestsTotal.WithLabelValues(algorithm, status).Inc()
	if status == "success" {
		suppressDuration.WithLabelValues(algorithm).Observe(seconds)
		suppressBoxesIn.Observe(float64(boxesIn))
		suppressBoxesKept.Observe(float64(boxesKept))
	}
}
