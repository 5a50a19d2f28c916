package classify

import (
	"math"

	"SignalEngine/internal/domain/models"
)

const (
	minOpacity     = 0.25
	opacityRange   = 0.75
	minBorderWidth = 1
	borderStep     = 25.0
)

// Level names used in LevelProgressView, in render order.
const (
	LevelPriorDayHigh  = "PDH"
	LevelPreMarketHigh = "PMH"
	LevelPriorDayLow   = "PDL"
	LevelPreMarketLow  = "PML"
)

// ClampStrength bounds a strength to [0,100]. Non-finite strengths clamp to 0.
func ClampStrength(s float64) float64 {
	if !isFinite(s) {
		return 0
	}
	return math.Max(0, math.Min(100, s))
}

// DisplayWall derives the visual weight of a wall from its regime-adjusted strength.
func (a RegimeAdjuster) DisplayWall(w models.Wall, regime Regime) models.WallView {
	adjusted := a.Adjust(w.RawStrength, regime)
	clamped := ClampStrength(adjusted)
	return models.WallView{
		Wall:             w,
		AdjustedStrength: adjusted,
		DisplayStrength:  clamped,
		Opacity:          minOpacity + opacityRange*clamped/100,
		BorderWidth:      minBorderWidth + int(math.Round(clamped/borderStep)),
	}
}

// LevelProgressFor computes progress buckets towards each reference level, measured from
// the prior-day midpoint. Without both prior-day levels or a price every bucket is 0.
func LevelProgressFor(levels models.LevelSet, price *float64) models.LevelProgressView {
	view := models.LevelProgressView{Levels: make([]models.LevelProgress, 0, 4)}

	high, okHigh := finite(levels.PriorDayHigh)
	low, okLow := finite(levels.PriorDayLow)
	p, okPrice := finite(price)
	var mid float64
	okMid := okHigh && okLow
	if okMid {
		mid = (high + low) / 2
		view.Midpoint = &mid
	}

	targets := []struct {
		name   string
		target *float64
		isHigh bool
	}{
		{LevelPriorDayHigh, levels.PriorDayHigh, true},
		{LevelPreMarketHigh, levels.PreMarketHigh, true},
		{LevelPriorDayLow, levels.PriorDayLow, false},
		{LevelPreMarketLow, levels.PreMarketLow, false},
	}
	for _, t := range targets {
		bucket := 0
		if tv, ok := finite(t.target); ok && okMid && okPrice {
			bucket = ProgressBucket(p, mid, tv, t.isHigh)
		}
		view.Levels = append(view.Levels, models.LevelProgress{
			Level:  t.name,
			Target: t.target,
			IsHigh: t.isHigh,
			Bucket: bucket,
			Glyphs: RenderBucket(bucket),
		})
	}
	return view
}
