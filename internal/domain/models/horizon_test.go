package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHorizon(t *testing.T) {
	assert.Equal(t, HorizonD3, NormalizeHorizon(" d3 "))
	assert.Equal(t, HorizonD7, NormalizeHorizon("D7"))
	assert.Equal(t, Horizon(""), NormalizeHorizon("  "))
	assert.True(t, IsKnownHorizon(NormalizeHorizon("d1")))
	assert.False(t, IsKnownHorizon("D30"))
}

func TestComparisonRowNullsDecodeAsAbsent(t *testing.T) {
	raw := `{"p_value":null,"sample_high":{"count":12,"mean_return":0.4,"win_rate":58},
		"sample_low":{"count":9},"delta_mean":0.25,"horizon":"D1"}`

	var row ComparisonRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	assert.Nil(t, row.PValue)
	assert.Nil(t, row.SampleHigh.MedianReturn)
	assert.Nil(t, row.DeltaMedian)
	assert.Nil(t, row.DeltaWinRate)
	require.NotNil(t, row.DeltaMean)
	assert.Equal(t, 0.25, *row.DeltaMean)
	assert.Equal(t, 12, row.SampleHigh.Count)
	assert.Equal(t, HorizonD1, row.Horizon)
}
