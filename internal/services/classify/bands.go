package classify

import "SignalEngine/internal/domain/models"

// PercentileBandOf buckets a 0-100 percentile rank. Absent or non-finite ranks are unknown.
func PercentileBandOf(p *float64) models.PercentileBand {
	v, ok := finite(p)
	if !ok {
		return models.BandUnknown
	}
	switch {
	case v < PercentileExtremeLow:
		return models.BandExtremeLow
	case v < PercentileLow:
		return models.BandLow
	case v < PercentileNeutral:
		return models.BandNeutralLow
	case v < PercentileNeutralHigh:
		return models.BandNeutralHigh
	default:
		return models.BandHigh
	}
}
