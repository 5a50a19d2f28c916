package usecase

import (
	"time"

	"SignalEngine/internal/domain/models"
	domrepo "SignalEngine/internal/domain/repository"
	"SignalEngine/internal/services/classify"
)

// Classifier runs the classification engine over request and dashboard payloads
// and records the outcomes.
type Classifier struct {
	adjuster classify.RegimeAdjuster
	metrics  domrepo.Metrics
	now      func() time.Time
}

// NewClassifier returns a Classifier. m may be nil.
func NewClassifier(adj classify.RegimeAdjuster, m domrepo.Metrics) *Classifier {
	if m == nil {
		m = nopMetrics{}
	}
	return &Classifier{adjuster: adj, metrics: m, now: time.Now}
}

// Confidence rates one comparison row. An empty horizon falls back to row.Horizon.
func (c *Classifier) Confidence(horizon models.Horizon, row models.ComparisonRow) models.ClassifiedComparison {
	if horizon == "" {
		horizon = row.Horizon
	}
	rating := classify.ClassifyConfidence(models.NormalizeHorizon(string(horizon)), row)
	c.metrics.RecordConfidence(rating.Level)
	return models.ClassifiedComparison{
		ComparisonRow: row,
		Rating:        rating,
		Color:         ConfidenceColor(rating.Level),
		Summary:       ReasonsSummary(rating.Reasons),
	}
}

// Regime rescales a raw wall strength for the regime label.
func (c *Classifier) Regime(raw float64, label string) models.RegimeResponse {
	regime := classify.ParseRegime(label)
	adjusted := c.adjuster.Adjust(raw, regime)
	return models.RegimeResponse{
		Regime:           string(regime),
		RawStrength:      raw,
		AdjustedStrength: adjusted,
		DisplayStrength:  classify.ClampStrength(adjusted),
	}
}

// Progress buckets price between midpoint and target.
func (c *Classifier) Progress(price, midpoint, target float64, isHigh bool) models.ProgressResponse {
	bucket := classify.ProgressBucket(price, midpoint, target, isHigh)
	c.metrics.RecordProgressBucket("adhoc", bucket)
	return models.ProgressResponse{Bucket: bucket, Glyphs: classify.RenderBucket(bucket)}
}

func (c *Classifier) Trend(levels models.LevelSet, price *float64) models.TrendState {
	state := classify.ClassifyTrend(levels, price)
	c.metrics.RecordTrend(state)
	return state
}

// ClassifyDashboard classifies every section of a payload. A non-empty
// regimeOverride replaces the payload's regime label.
func (c *Classifier) ClassifyDashboard(p models.DashboardPayload, regimeOverride string) *models.ClassifiedDashboard {
	start := c.now()

	label := p.Regime.Label
	if regimeOverride != "" {
		label = regimeOverride
	}
	regime := classify.ParseRegime(label)

	out := &models.ClassifiedDashboard{
		Symbol:      p.Symbol,
		Price:       p.Price,
		RegimeLabel: label,
		Regime:      string(regime),
		Comparisons: make([]models.ClassifiedComparison, 0, len(p.Comparisons)),
		Walls:       make([]models.WallView, 0, len(p.Walls)),
		Percentiles: make(map[string]models.PercentileBand, len(p.Percentiles)),
		Timestamp:   start.UTC(),
	}

	for _, row := range p.Comparisons {
		out.Comparisons = append(out.Comparisons, c.Confidence(row.Horizon, row))
	}
	for _, w := range p.Walls {
		out.Walls = append(out.Walls, c.adjuster.DisplayWall(w, regime))
	}

	out.Trend = c.Trend(p.Levels, p.Price)
	out.Progress = classify.LevelProgressFor(p.Levels, p.Price)
	for _, lp := range out.Progress.Levels {
		c.metrics.RecordProgressBucket(lp.Level, lp.Bucket)
	}

	for name, v := range p.Percentiles {
		out.Percentiles[name] = classify.PercentileBandOf(v)
	}

	c.metrics.RecordLatency("classify_dashboard", c.now().Sub(start).Seconds())
	return out
}

type nopMetrics struct{}

func (nopMetrics) RecordConfidence(models.ConfidenceLevel) {}
func (nopMetrics) RecordTrend(models.TrendState)           {}
func (nopMetrics) RecordProgressBucket(string, int)        {}
func (nopMetrics) RecordError(string)                      {}
func (nopMetrics) RecordLatency(string, float64)           {}
