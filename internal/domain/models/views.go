package models

// PercentileBand buckets a percentile rank using the shared 20/35/50/65 cutoffs.
type PercentileBand string

const (
	BandExtremeLow  PercentileBand = "extreme_low"
	BandLow         PercentileBand = "low"
	BandNeutralLow  PercentileBand = "neutral_low"
	BandNeutralHigh PercentileBand = "neutral_high"
	BandHigh        PercentileBand = "high"
	BandUnknown     PercentileBand = "unknown"
)

// WallView is a wall with its regime-adjusted display attributes.
type WallView struct {
	Wall
	AdjustedStrength float64 `json:"adjusted_strength"` // unclamped
	DisplayStrength  float64 `json:"display_strength"`  // clamped to [0,100]
	Opacity          float64 `json:"opacity"`
	BorderWidth      int     `json:"border_width"`
}

// LevelProgress is the progress of price towards one reference level.
type LevelProgress struct {
	Level  string   `json:"level"`
	Target *float64 `json:"target"`
	IsHigh bool     `json:"is_high"`
	Bucket int      `json:"bucket"`
	Glyphs string   `json:"glyphs"`
}

// LevelProgressView groups the per-level progress around the prior-day midpoint.
type LevelProgressView struct {
	Midpoint *float64        `json:"midpoint"`
	Levels   []LevelProgress `json:"levels"`
}
