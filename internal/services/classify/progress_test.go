package classify

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestProgressBucketHigh(t *testing.T) {
	tests := []struct {
		price float64
		want  int
	}{
		{101, 1},
		{102, 1},
		{104, 2},
		{108, 3},
		{112, 4},
		{116, 5},
		{119.9, 5},
		{100, 0},
		{120, 0},
		{99, 0},
		{150, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressBucket(tt.price, 100, 120, true), "price %v", tt.price)
	}
}

func TestProgressBucketLow(t *testing.T) {
	assert.Equal(t, 3, ProgressBucket(90, 100, 80, false))
	assert.Equal(t, 5, ProgressBucket(84, 100, 80, false))
	assert.Equal(t, 1, ProgressBucket(99, 100, 80, false))
	assert.Equal(t, 0, ProgressBucket(80, 100, 80, false))
	assert.Equal(t, 0, ProgressBucket(101, 100, 80, false))
	// target on the wrong side of the midpoint
	assert.Equal(t, 0, ProgressBucket(110, 100, 120, false))
	assert.Equal(t, 0, ProgressBucket(90, 100, 80, true))
}

func TestProgressBucketOutOfRange(t *testing.T) {
	assert.Equal(t, 0, ProgressBucket(150, 100, 120, true))
}

func TestProgressBucketNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	assert.Equal(t, 0, ProgressBucket(nan, 100, 120, true))
	assert.Equal(t, 0, ProgressBucket(110, nan, 120, true))
	assert.Equal(t, 0, ProgressBucket(110, 100, inf, true))
	assert.Equal(t, 0, ProgressBucket(-inf, 100, 80, false))
}

func TestProgressBucketMirrorSymmetry(t *testing.T) {
	const pivot = 200.0
	mirror := func(x float64) float64 { return 2*pivot - x }
	for price := 95.0; price <= 125; price++ {
		high := ProgressBucket(price, 100, 120, true)
		low := ProgressBucket(mirror(price), mirror(100), mirror(120), false)
		assert.Equal(t, high, low, "price %v", price)
	}
}

func TestRenderBucket(t *testing.T) {
	assert.Equal(t, "▓▓▓▓▓", RenderBucket(5))
	assert.Equal(t, "▓▓▓▓▒", RenderBucket(4))
	assert.Equal(t, "▓▓▓▒▒", RenderBucket(3))
	assert.Equal(t, "▓▓▒▒▒", RenderBucket(2))
	assert.Equal(t, "▓▒▒▒▒", RenderBucket(1))
	assert.Equal(t, "▒▒▒▒▒", RenderBucket(0))
	assert.Equal(t, "▒▒▒▒▒", RenderBucket(-1))
	assert.Equal(t, "▒▒▒▒▒", RenderBucket(6))
}

func TestRenderedGlyphsShape(t *testing.T) {
	for price := 70.0; price <= 130; price += 0.5 {
		for _, isHigh := range []bool{true, false} {
			target := 120.0
			if !isHigh {
				target = 80
			}
			s := RenderBucket(ProgressBucket(price, 100, target, isHigh))
			assert.Equal(t, 5, utf8.RuneCountInString(s))
			for _, r := range s {
				assert.Contains(t, []rune{'▓', '▒'}, r)
			}
		}
	}
}
