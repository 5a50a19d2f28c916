package classify

import (
	"math"
	"testing"

	"SignalEngine/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func levels(pdh, pdl, pmh, pml *float64) models.LevelSet {
	return models.LevelSet{PriorDayHigh: pdh, PriorDayLow: pdl, PreMarketHigh: pmh, PreMarketLow: pml}
}

func TestClassifyTrend(t *testing.T) {
	f := models.Float
	full := levels(f(100), f(90), f(102), f(88))

	tests := []struct {
		name   string
		levels models.LevelSet
		price  *float64
		want   models.TrendState
	}{
		{"above both highs", full, f(103), models.TrendBullish},
		{"above PDH only", full, f(101), models.TrendNeutral},
		{"below both lows", full, f(87), models.TrendBearish},
		{"below PDL only", full, f(89), models.TrendNeutral},
		{"inside range", full, f(95), models.TrendNeutral},
		{"equal to highs", levels(f(100), f(90), f(100), f(88)), f(100), models.TrendNeutral},
		{"missing price", full, nil, models.TrendNeutral},
		{"nan price", full, f(math.NaN()), models.TrendNeutral},
		{"missing pre-market high", levels(f(100), f(90), nil, f(80)), f(110), models.TrendNeutral},
		{"missing pre-market low", levels(f(100), f(90), f(102), nil), f(50), models.TrendNeutral},
		{"conflicting breaches", levels(f(100), f(90), f(120), f(105)), f(101), models.TrendNeutral},
		{"no levels", models.LevelSet{}, f(100), models.TrendNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrend(tt.levels, tt.price))
		})
	}
}
