package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"SignalEngine/internal/domain/models"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	confidence  *prometheus.CounterVec
	trend       *prometheus.CounterVec
	progress    *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New registers the classification collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		confidence: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalengine_confidence_total",
				Help: "Confidence ratings produced, by level",
			},
			[]string{"level"},
		),
		trend: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalengine_trend_total",
				Help: "Trend classifications produced, by state",
			},
			[]string{"state"},
		),
		progress: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalengine_progress_bucket",
				Help: "Progress buckets produced, by level and bucket",
			},
			[]string{"level", "bucket"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalengine_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signalengine_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (r *Recorder) RecordConfidence(level models.ConfidenceLevel) {
	r.confidence.WithLabelValues(string(level)).Inc()
}

func (r *Recorder) RecordTrend(state models.TrendState) {
	r.trend.WithLabelValues(string(state)).Inc()
}

func (r *Recorder) RecordProgressBucket(level string, bucket int) {
	r.progress.WithLabelValues(level, strconv.Itoa(bucket)).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
