package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "signalengine",
			Subsystem: "upstream",
			Name:      "latency_seconds",
			Help:      "Latency of analytics backend calls",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	UpstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signalengine",
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Analytics backend errors by endpoint and kind",
		},
		[]string{"endpoint", "kind"},
	)

	BreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "signalengine",
			Subsystem: "upstream",
			Name:      "breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	ClassifyLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "signalengine",
			Subsystem: "api",
			Name:      "classify_latency_seconds",
			Help:      "Latency of classification endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signalengine",
			Subsystem: "api",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client limiter",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(UpstreamLatency, UpstreamErrors, BreakerState, ClassifyLatency, RateLimited)
	})
}
