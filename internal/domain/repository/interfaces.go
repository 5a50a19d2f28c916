package repository

import "SignalEngine/internal/domain/models"

// Metrics records classification outcomes.
type Metrics interface {
	RecordConfidence(level models.ConfidenceLevel)
	RecordTrend(state models.TrendState)
	RecordProgressBucket(level string, bucket int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
