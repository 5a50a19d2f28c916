package classify

// Confidence factor tiers. Comparisons are inclusive on the tighter tier.
const (
	PValueStrong   = 0.05
	PValueModerate = 0.10
	PValueWeak     = 0.15

	SampleLarge  = 50
	SampleMedium = 30
	SampleSmall  = 20

	EffectMeanD1      = 0.20 // percent
	EffectMeanD3      = 0.40
	EffectMeanDefault = 0.80
	EffectWinRate     = 5.0 // percentage points

	ConfidenceHighMin   = 5.0
	ConfidenceMediumMin = 3.0
)

// Points awarded per confidence factor tier.
const (
	pointsStrong   = 2.0
	pointsModerate = 1.0
	pointsWeak     = 0.5
	pointsEffect   = 1.5
	pointsHorizon  = 1.0
)

// Regime labels as emitted by the analytics backend, and the strength factors applied for them.
const (
	HighVolatilityLabel = "High Volatility"
	LowVolatilityLabel  = "Low Volatility"

	RegimeBoostFactor   = 1.3
	RegimeDampingFactor = 0.8
)

// Percentile cutoffs shared by the classifier and the dashboard presentation.
const (
	PercentileExtremeLow  = 20.0
	PercentileLow         = 35.0
	PercentileNeutral     = 50.0
	PercentileNeutralHigh = 65.0
)

// Progress bucket cutoffs on the 0-1 progress ratio.
const (
	progressBucket5 = 0.8
	progressBucket4 = 0.6
	progressBucket3 = 0.4
	progressBucket2 = 0.2
)
