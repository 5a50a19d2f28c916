package classify

import "math"

// MaxBucket is the highest progress bucket.
const MaxBucket = 5

var bucketGlyphs = [MaxBucket + 1]string{
	0: "▒▒▒▒▒",
	1: "▓▒▒▒▒",
	2: "▓▓▒▒▒",
	3: "▓▓▓▒▒",
	4: "▓▓▓▓▒",
	5: "▓▓▓▓▓",
}

// ProgressBucket discretises how far price has travelled from midpoint towards target.
//
// With isHigh the target must sit above the midpoint and price strictly between them;
// otherwise the target must sit below and price strictly between target and midpoint.
// Anything else, including non-finite inputs, is bucket 0. Valid positions map to 1..5
// in steps of 20% progress.
func ProgressBucket(price, midpoint, target float64, isHigh bool) int {
	if !isFinite(price) || !isFinite(midpoint) || !isFinite(target) {
		return 0
	}

	var progress float64
	if isHigh {
		if target <= midpoint || price <= midpoint || price >= target {
			return 0
		}
		progress = (price - midpoint) / (target - midpoint)
	} else {
		if target >= midpoint || price <= target || price >= midpoint {
			return 0
		}
		progress = (midpoint - price) / (midpoint - target)
	}

	switch {
	case progress >= progressBucket5:
		return 5
	case progress >= progressBucket4:
		return 4
	case progress >= progressBucket3:
		return 3
	case progress >= progressBucket2:
		return 2
	default:
		return 1
	}
}

// RenderBucket returns the fixed five-glyph bar for a bucket. Out of range buckets
// render as empty.
func RenderBucket(bucket int) string {
	if bucket < 0 || bucket > MaxBucket {
		return bucketGlyphs[0]
	}
	return bucketGlyphs[bucket]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
