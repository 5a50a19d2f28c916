package usecase

import (
	"strings"

	"SignalEngine/internal/domain/models"
)

// UI color tokens for confidence levels.
const (
	ColorSuccess = "success"
	ColorWarning = "warning"
	ColorDefault = "default"
)

// ConfidenceColor maps a level to the dashboard color token.
func ConfidenceColor(level models.ConfidenceLevel) string {
	switch level {
	case models.ConfidenceHigh:
		return ColorSuccess
	case models.ConfidenceMedium:
		return ColorWarning
	default:
		return ColorDefault
	}
}

// ReasonsSummary renders reasons the way the dashboard tooltip shows them.
func ReasonsSummary(reasons []string) string {
	return strings.Join(reasons, ", ")
}
