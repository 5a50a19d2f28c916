package classify

import (
	"fmt"
	"math"

	"SignalEngine/internal/domain/models"
)

const (
	tagPStrong     = "p≤0.05"
	tagPModerate   = "p≤0.10"
	tagPWeak       = "p≤0.15"
	tagPNone       = "p>0.15"
	tagPAbsent     = "p=N/A"
	tagNLarge      = "n≥50"
	tagNMedium     = "n≥30"
	tagNSmall      = "n≥20"
	tagNNone       = "n<20"
	tagSmallEffect = "small effect"
	tagHorizon     = "matches early-exit horizon"
)

// ClassifyConfidence rates how far a performance delta can be trusted.
//
// Four factors are scored independently and summed (max 6.5):
//   - p-value tier: 2 / 1 / 0.5 / 0
//   - smaller group size tier: 2 / 1 / 0.5 / 0
//   - effect size present for the horizon: 1.5 / 0
//   - horizon other than D7: 1 / 0
//
// total >= 5 is High, >= 3 Medium, anything else Low. Absent or non-finite inputs score
// the weakest tier. The horizon argument is authoritative; row.Horizon is not consulted.
func ClassifyConfidence(horizon models.Horizon, row models.ComparisonRow) models.ConfidenceRating {
	reasons := make([]string, 0, 4)

	pScore, pTag := pValueTier(row.PValue)
	reasons = append(reasons, pTag)

	nScore, nTag := sampleTier(min(row.SampleHigh.Count, row.SampleLow.Count))
	reasons = append(reasons, nTag)

	eScore, eTag := effectTier(horizon, row)
	reasons = append(reasons, eTag)

	var hScore float64
	if horizon != models.HorizonD7 {
		hScore = pointsHorizon
		reasons = append(reasons, tagHorizon)
	}

	total := pScore + nScore + eScore + hScore
	return models.ConfidenceRating{
		Level:   confidenceLevel(total),
		Score:   total,
		Reasons: reasons,
	}
}

// EffectThreshold returns the minimum |delta mean| (in percent) that counts as a
// practically significant effect for the horizon.
func EffectThreshold(horizon models.Horizon) float64 {
	switch horizon {
	case models.HorizonD1:
		return EffectMeanD1
	case models.HorizonD3:
		return EffectMeanD3
	default:
		return EffectMeanDefault
	}
}

func pValueTier(p *float64) (float64, string) {
	v, ok := finite(p)
	if !ok {
		return 0, tagPAbsent
	}
	switch {
	case v <= PValueStrong:
		return pointsStrong, tagPStrong
	case v <= PValueModerate:
		return pointsModerate, tagPModerate
	case v <= PValueWeak:
		return pointsWeak, tagPWeak
	default:
		return 0, tagPNone
	}
}

func sampleTier(n int) (float64, string) {
	switch {
	case n >= SampleLarge:
		return pointsStrong, tagNLarge
	case n >= SampleMedium:
		return pointsModerate, tagNMedium
	case n >= SampleSmall:
		return pointsWeak, tagNSmall
	default:
		return 0, tagNNone
	}
}

func effectTier(horizon models.Horizon, row models.ComparisonRow) (float64, string) {
	meanThreshold := EffectThreshold(horizon)
	present := atLeast(row.DeltaMean, meanThreshold) ||
		atLeast(row.DeltaMedian, meanThreshold) ||
		atLeast(row.DeltaWinRate, EffectWinRate)
	if !present {
		return 0, tagSmallEffect
	}
	return pointsEffect, fmt.Sprintf("effect≥%.2f%% or win≥%gpp", meanThreshold, EffectWinRate)
}

func confidenceLevel(total float64) models.ConfidenceLevel {
	switch {
	case total >= ConfidenceHighMin:
		return models.ConfidenceHigh
	case total >= ConfidenceMediumMin:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// atLeast reports |v| >= threshold for a present, finite v.
func atLeast(v *float64, threshold float64) bool {
	x, ok := finite(v)
	return ok && math.Abs(x) >= threshold
}

// finite unwraps v, treating nil, NaN and ±Inf as absent.
func finite(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
