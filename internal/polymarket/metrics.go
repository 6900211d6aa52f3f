package polymarket

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks Gamma API requests by outcome
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_probs_polymarket_requests_total",
			Help: "Total number of Polymarket Gamma API requests",
		},
		[]string{"status"}, // ok, error
	)

	// RequestDuration tracks successful request latency
	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nba_probs_polymarket_request_duration_seconds",
			Help:    "Latency of successful Polymarket Gamma API requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)
