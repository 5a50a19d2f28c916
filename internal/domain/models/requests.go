package models

// Requests for the classification HTTP endpoints.

type ConfidenceRequest struct {
	// Horizon falls back to Row.Horizon when empty.
	Horizon Horizon       `json:"horizon" validate:"omitempty,max=8"`
	Row     ComparisonRow `json:"row"`
}

type RegimeRequest struct {
	RawStrength float64 `json:"raw_strength" validate:"gte=0,lte=100"`
	RegimeLabel string  `json:"regime_label" validate:"max=128"`
}

type ProgressRequest struct {
	Price     *float64 `json:"price" validate:"required"`
	Midpoint  *float64 `json:"midpoint" validate:"required"`
	Target    *float64 `json:"target" validate:"required"`
	Direction string   `json:"direction" default:"high" validate:"oneof=high low"`
}

type TrendRequest struct {
	Levels LevelSet `json:"levels"`
	Price  *float64 `json:"price"`
}

type SnapshotRequest struct {
	Symbol string `param:"symbol" validate:"required,symbol"`
	Regime string `query:"regime" validate:"max=128"`
}

type ConfidenceResponse struct {
	ConfidenceRating
	Color   string `json:"color"`
	Summary string `json:"summary"`
}

type RegimeResponse struct {
	Regime           string  `json:"regime"`
	RawStrength      float64 `json:"raw_strength"`
	AdjustedStrength float64 `json:"adjusted_strength"`
	DisplayStrength  float64 `json:"display_strength"`
}

type ProgressResponse struct {
	Bucket int    `json:"bucket"`
	Glyphs string `json:"glyphs"`
}

type TrendResponse struct {
	State TrendState `json:"state"`
}

type SnapshotsRequest struct {
	Symbols string `query:"symbols" validate:"required,max=256,symbols"`
	Regime  string `query:"regime" validate:"max=128"`
}
