package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegime(t *testing.T) {
	tests := []struct {
		label string
		want  Regime
	}{
		{"High Volatility", RegimeHighVolatility},
		{"Regime: High Volatility (VIX 31)", RegimeHighVolatility},
		{"Low Volatility grind", RegimeLowVolatility},
		{"Normal Volatility", RegimeNormal},
		{"high volatility", RegimeNormal},
		{"", RegimeNormal},
		{"high_volatility", RegimeHighVolatility},
		{"low_volatility", RegimeLowVolatility},
		{"High Volatility after Low Volatility", RegimeHighVolatility},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRegime(tt.label), "label %q", tt.label)
	}
}

func TestApplyRegimeAdjustment(t *testing.T) {
	assert.InDelta(t, 65.0, ApplyRegimeAdjustment(50, "High Volatility"), 1e-9)
	assert.InDelta(t, 40.0, ApplyRegimeAdjustment(50, "Low Volatility"), 1e-9)

	// boosted values are not clamped
	assert.InDelta(t, 117.0, ApplyRegimeAdjustment(90, "High Volatility"), 1e-9)
}

func TestApplyRegimeAdjustmentIdentity(t *testing.T) {
	for _, x := range []float64{0, 1, 42.5, 100, 250, -3, math.NaN(), math.Inf(1)} {
		got := ApplyRegimeAdjustment(x, "Normal Volatility")
		assert.Equal(t, math.Float64bits(x), math.Float64bits(got), "x=%v", x)
	}
}

func TestNewRegimeAdjuster(t *testing.T) {
	a := NewRegimeAdjuster(1.5, 0.5)
	assert.Equal(t, 150.0, a.Adjust(100, RegimeHighVolatility))
	assert.Equal(t, 50.0, a.Adjust(100, RegimeLowVolatility))

	// out of range factors fall back to defaults
	d := NewRegimeAdjuster(0.9, 1.2)
	assert.Equal(t, DefaultRegimeAdjuster, d)
	assert.Equal(t, DefaultRegimeAdjuster, NewRegimeAdjuster(0, 0))
}
