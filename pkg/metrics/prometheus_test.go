package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"SignalEngine/internal/domain/models"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordConfidence(models.ConfidenceHigh)
	r.RecordConfidence(models.ConfidenceHigh)
	r.RecordConfidence(models.ConfidenceLow)
	r.RecordTrend(models.TrendBullish)
	r.RecordProgressBucket("PDH", 3)
	r.RecordError("decode")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.confidence.WithLabelValues("High")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.confidence.WithLabelValues("Low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.trend.WithLabelValues("Bullish")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.progress.WithLabelValues("PDH", "3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("decode")))
}

func TestNewOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
