package models

import "time"

// DashboardPayload is the analytics backend's per-symbol snapshot. Missing or null
// numeric fields decode to nil and are treated as absent.
type DashboardPayload struct {
	Symbol      string              `json:"symbol"`
	Price       *float64            `json:"price"`
	Regime      MarketRegime        `json:"regime"`
	Comparisons []ComparisonRow     `json:"comparisons"`
	Walls       []Wall              `json:"walls"`
	Levels      LevelSet            `json:"levels"`
	Percentiles map[string]*float64 `json:"percentiles"`
}

// ClassifiedComparison pairs a row with its rating and display hints.
type ClassifiedComparison struct {
	ComparisonRow
	Rating  ConfidenceRating `json:"rating"`
	Color   string           `json:"color"`
	Summary string           `json:"summary"`
}

// ClassifiedDashboard is recomputed from a DashboardPayload on every request.
type ClassifiedDashboard struct {
	Symbol      string                    `json:"symbol"`
	Price       *float64                  `json:"price"`
	RegimeLabel string                    `json:"regime_label"`
	Regime      string                    `json:"regime"`
	Comparisons []ClassifiedComparison    `json:"comparisons"`
	Walls       []WallView                `json:"walls"`
	Trend       TrendState                `json:"trend"`
	Progress    LevelProgressView         `json:"progress"`
	Percentiles map[string]PercentileBand `json:"percentiles"`
	Timestamp   time.Time                 `json:"timestamp"`
}

// SnapshotBatch is the result of classifying several symbols at once.
// Errors is keyed by symbol and omitted when every symbol succeeded.
type SnapshotBatch struct {
	Dashboards map[string]*ClassifiedDashboard `json:"dashboards"`
	Errors     map[string]string               `json:"errors,omitempty"`
	Timestamp  time.Time                       `json:"timestamp"`
}
