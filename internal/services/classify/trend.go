package classify

import "SignalEngine/internal/domain/models"

// ClassifyTrend labels price against the prior-day and pre-market levels.
// Bullish needs price strictly above both highs, Bearish strictly below both lows; a
// missing level on a side fails that side. Everything else, including a missing price
// or conflicting breaches, is Neutral.
func ClassifyTrend(levels models.LevelSet, price *float64) models.TrendState {
	p, ok := finite(price)
	if !ok {
		return models.TrendNeutral
	}
	if above(p, levels.PriorDayHigh) && above(p, levels.PreMarketHigh) {
		return models.TrendBullish
	}
	if below(p, levels.PriorDayLow) && below(p, levels.PreMarketLow) {
		return models.TrendBearish
	}
	return models.TrendNeutral
}

func above(price float64, level *float64) bool {
	l, ok := finite(level)
	return ok && price > l
}

func below(price float64, level *float64) bool {
	l, ok := finite(level)
	return ok && price < l
}
