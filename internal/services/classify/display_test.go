package classify

import (
	"math"
	"testing"

	"SignalEngine/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayWall(t *testing.T) {
	w := models.Wall{Strike: 450, RawStrength: 80, Type: models.WallCall, Timeframe: models.WallSwing, Notional: 1.2e9}

	boosted := DefaultRegimeAdjuster.DisplayWall(w, RegimeHighVolatility)
	assert.InDelta(t, 104.0, boosted.AdjustedStrength, 1e-9)
	assert.Equal(t, 100.0, boosted.DisplayStrength)
	assert.InDelta(t, 1.0, boosted.Opacity, 1e-9)
	assert.Equal(t, 5, boosted.BorderWidth)
	assert.Equal(t, w, boosted.Wall)

	normal := DefaultRegimeAdjuster.DisplayWall(models.Wall{RawStrength: 50}, RegimeNormal)
	assert.Equal(t, 50.0, normal.DisplayStrength)
	assert.InDelta(t, 0.625, normal.Opacity, 1e-9)
	assert.Equal(t, 3, normal.BorderWidth)

	damped := DefaultRegimeAdjuster.DisplayWall(models.Wall{RawStrength: 50}, RegimeLowVolatility)
	assert.InDelta(t, 40.0, damped.DisplayStrength, 1e-9)
	assert.Equal(t, 3, damped.BorderWidth)
}

func TestClampStrength(t *testing.T) {
	assert.Equal(t, 0.0, ClampStrength(-5))
	assert.Equal(t, 100.0, ClampStrength(130))
	assert.Equal(t, 42.0, ClampStrength(42))
	assert.Equal(t, 0.0, ClampStrength(math.NaN()))
}

func TestLevelProgressFor(t *testing.T) {
	f := models.Float
	lv := models.LevelSet{PriorDayHigh: f(110), PriorDayLow: f(90), PreMarketHigh: f(105), PreMarketLow: f(95)}

	view := LevelProgressFor(lv, f(104))
	require.NotNil(t, view.Midpoint)
	assert.Equal(t, 100.0, *view.Midpoint)
	require.Len(t, view.Levels, 4)

	byName := map[string]models.LevelProgress{}
	for _, l := range view.Levels {
		byName[l.Level] = l
	}
	assert.Equal(t, 3, byName[LevelPriorDayHigh].Bucket)
	assert.Equal(t, "▓▓▓▒▒", byName[LevelPriorDayHigh].Glyphs)
	assert.Equal(t, 5, byName[LevelPreMarketHigh].Bucket)
	assert.Equal(t, 0, byName[LevelPriorDayLow].Bucket)
	assert.Equal(t, 0, byName[LevelPreMarketLow].Bucket)
	assert.False(t, byName[LevelPriorDayLow].IsHigh)
}

func TestLevelProgressForMissingInputs(t *testing.T) {
	f := models.Float
	noPrice := LevelProgressFor(models.LevelSet{PriorDayHigh: f(110), PriorDayLow: f(90)}, nil)
	require.NotNil(t, noPrice.Midpoint)
	for _, l := range noPrice.Levels {
		assert.Equal(t, 0, l.Bucket)
		assert.Equal(t, "▒▒▒▒▒", l.Glyphs)
	}

	noMid := LevelProgressFor(models.LevelSet{PriorDayHigh: f(110), PreMarketHigh: f(105)}, f(104))
	assert.Nil(t, noMid.Midpoint)
	for _, l := range noMid.Levels {
		assert.Equal(t, 0, l.Bucket)
	}
}

func TestPercentileBandOf(t *testing.T) {
	f := models.Float
	assert.Equal(t, models.BandExtremeLow, PercentileBandOf(f(10)))
	assert.Equal(t, models.BandLow, PercentileBandOf(f(20)))
	assert.Equal(t, models.BandLow, PercentileBandOf(f(34.9)))
	assert.Equal(t, models.BandNeutralLow, PercentileBandOf(f(35)))
	assert.Equal(t, models.BandNeutralHigh, PercentileBandOf(f(50)))
	assert.Equal(t, models.BandHigh, PercentileBandOf(f(65)))
	assert.Equal(t, models.BandUnknown, PercentileBandOf(nil))
	assert.Equal(t, models.BandUnknown, PercentileBandOf(f(math.NaN())))
}
