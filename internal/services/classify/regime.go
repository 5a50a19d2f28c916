package classify

import "strings"

// Regime is the closed set of volatility regimes the strength scorer understands.
type Regime string

const (
	RegimeHighVolatility Regime = "high_volatility"
	RegimeLowVolatility  Regime = "low_volatility"
	RegimeNormal         Regime = "normal"
)

// ParseRegime maps a backend regime label onto a Regime. Enum values are accepted as-is;
// free text is matched by case-sensitive substring, "High Volatility" taking precedence.
func ParseRegime(label string) Regime {
	switch Regime(label) {
	case RegimeHighVolatility, RegimeLowVolatility, RegimeNormal:
		return Regime(label)
	}
	switch {
	case strings.Contains(label, HighVolatilityLabel):
		return RegimeHighVolatility
	case strings.Contains(label, LowVolatilityLabel):
		return RegimeLowVolatility
	default:
		return RegimeNormal
	}
}

// RegimeAdjuster rescales wall strengths by regime.
type RegimeAdjuster struct {
	Boost   float64 // applied in high volatility, > 1
	Damping float64 // applied in low volatility, < 1
}

// DefaultRegimeAdjuster uses RegimeBoostFactor and RegimeDampingFactor.
var DefaultRegimeAdjuster = RegimeAdjuster{Boost: RegimeBoostFactor, Damping: RegimeDampingFactor}

// NewRegimeAdjuster builds an adjuster, falling back to the default factor for any
// factor that is not on the expected side of 1.
func NewRegimeAdjuster(boost, damping float64) RegimeAdjuster {
	a := DefaultRegimeAdjuster
	if boost > 1 {
		a.Boost = boost
	}
	if damping > 0 && damping < 1 {
		a.Damping = damping
	}
	return a
}

// Adjust applies the regime factor to raw. The result is not clamped: boosted strengths
// may exceed 100 and callers needing a bounded value must clamp it themselves.
func (a RegimeAdjuster) Adjust(raw float64, regime Regime) float64 {
	switch regime {
	case RegimeHighVolatility:
		return raw * a.Boost
	case RegimeLowVolatility:
		return raw * a.Damping
	default:
		return raw
	}
}

// ApplyRegimeAdjustment rescales a raw wall strength for the regime label using the
// default factors. Output is unclamped.
func ApplyRegimeAdjustment(rawStrength float64, regimeLabel string) float64 {
	return DefaultRegimeAdjuster.Adjust(rawStrength, ParseRegime(regimeLabel))
}
