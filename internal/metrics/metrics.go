package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess        = "success"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
)

var (
	// Upstream proxy metrics
	GeminiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_gemini_requests_total",
		Help: "Total number of proxied Gemini generation requests.",
	}, []string{"outcome"}) // outcome: "success", "upstream_error" or "transport_error"
	GeminiRequestDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "app_gemini_request_duration_seconds",
		Help:    "Duration of upstream Gemini calls in seconds.",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
	})

	// Destination listing metrics
	DestinationsServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_destinations_served_total",
		Help: "Total number of destination documents returned to callers.",
	}, []string{"query"}) // query: "all" or "trendy"
)
