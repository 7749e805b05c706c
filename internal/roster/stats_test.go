package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailedStats(t *testing.T) {
	f := NewFighter(1)
	f.Grappling = 81
	f.Finishing = 90
	f.Dominance = 70
	f.StrikingDetails = StrikingDetails{SPLM: 4.3, StrAcc: 57}

	sheet := DetailedStats(f)

	require.Len(t, sheet.Striking, 4)
	assert.Equal(t, Metric{Name: "Strikes/Min", Value: 4.3, Max: 10}, sheet.Striking[0])
	assert.Equal(t, 57.0, sheet.Striking[1].Value)

	require.Len(t, sheet.Finishing, 4)
	assert.Equal(t, 90.0, sheet.Finishing[0].Value)
	assert.Equal(t, 65.0, sheet.Finishing[1].Value) // round(81 * 0.8)
	assert.Equal(t, 70.0, sheet.Finishing[2].Value)
	assert.Equal(t, 81.0, sheet.Finishing[3].Value) // round(90 * 0.9)

	sections := sheet.Sections()
	require.Len(t, sections, 5)
	assert.Equal(t, "Striking", sections[0].Title)
	assert.Equal(t, "Finishing", sections[4].Title)
}

func TestRatings(t *testing.T) {
	f := NewFighter(1)
	f.Striking = 95
	ratings := Ratings(f)
	require.Len(t, ratings, 5)
	assert.Equal(t, "Striking", ratings[0].Name)
	assert.Equal(t, 95.0, ratings[0].Value)
	assert.Equal(t, 75.0, ratings[1].Value)
}

func TestDivisionsLabel(t *testing.T) {
	tests := []struct {
		divisions Value
		want      string
	}{
		{String("['heavyweight', 'light heavyweight']"), "Heavyweight, Light Heavyweight"},
		{String("[\"WELTERWEIGHT\"]"), "Welterweight"},
		{String(""), ""},
		{Empty(), ""},
	}

	for _, tt := range tests {
		f := NewFighter(1)
		f.Divisions = tt.divisions
		assert.Equal(t, tt.want, DivisionsLabel(f))
	}
}
