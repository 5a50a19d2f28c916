package models

// Horizon labels a forward return window ("D1" = one trading day).
type Horizon string

const (
	HorizonD1 Horizon = "D1"
	HorizonD3 Horizon = "D3"
	HorizonD7 Horizon = "D7"
)

// MetricSample holds one comparison group's statistics.
type MetricSample struct {
	Count        int      `json:"count"`
	MeanReturn   float64  `json:"mean_return"`
	MedianReturn *float64 `json:"median_return"`
	WinRate      float64  `json:"win_rate"` // 0-100
}

// ComparisonRow is a high-vs-low group comparison as produced by the statistics backend.
// Deltas are precomputed upstream and trusted as supplied.
type ComparisonRow struct {
	PValue       *float64     `json:"p_value"`
	SampleHigh   MetricSample `json:"sample_high"`
	SampleLow    MetricSample `json:"sample_low"`
	DeltaMean    *float64     `json:"delta_mean"`
	DeltaMedian  *float64     `json:"delta_median"`
	DeltaWinRate *float64     `json:"delta_win_rate"`
	Horizon      Horizon      `json:"horizon"`
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// ConfidenceRating is the verdict for one ComparisonRow. Reasons always carries every
// factor tag in evaluation order, contributing or not.
type ConfidenceRating struct {
	Level   ConfidenceLevel `json:"level"`
	Score   float64         `json:"score"`
	Reasons []string        `json:"reasons"`
}

type WallType string

const (
	WallPut  WallType = "put"
	WallCall WallType = "call"
)

type WallTimeframe string

const (
	WallSwing     WallTimeframe = "swing"
	WallLong      WallTimeframe = "long"
	WallQuarterly WallTimeframe = "quarterly"
)

// Wall is a gamma-wall price level.
type Wall struct {
	Strike      float64       `json:"strike"`
	RawStrength float64       `json:"raw_strength"` // 0-100
	Type        WallType      `json:"type"`
	Timeframe   WallTimeframe `json:"timeframe"`
	Notional    float64       `json:"notional"`
}

// MarketRegime is the backend's free-text volatility regime.
type MarketRegime struct {
	Label string `json:"label"`
}

// LevelSet holds the reference prices used for trend and progress classification.
type LevelSet struct {
	PriorDayHigh  *float64 `json:"prior_day_high"`
	PriorDayLow   *float64 `json:"prior_day_low"`
	PreMarketHigh *float64 `json:"pre_market_high"`
	PreMarketLow  *float64 `json:"pre_market_low"`
}

type TrendState string

const (
	TrendBullish TrendState = "Bullish"
	TrendBearish TrendState = "Bearish"
	TrendNeutral TrendState = "Neutral"
)

// Float returns a pointer to v. Handy for building payloads with present values.
func Float(v float64) *float64 { return &v }
