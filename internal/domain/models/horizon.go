package models

import "strings"

// IsKnownHorizon reports whether h is one of the horizons the backend publishes.
// Unknown horizons are still classified; they simply are not D7.
func IsKnownHorizon(h Horizon) bool {
	switch h {
	case HorizonD1, HorizonD3, HorizonD7:
		return true
	default:
		return false
	}
}

// NormalizeHorizon trims and upper-cases a raw horizon label ("d3 " -> "D3").
func NormalizeHorizon(s string) Horizon {
	return Horizon(strings.ToUpper(strings.TrimSpace(s)))
}
