package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellecat/AstroCore/chart"
)

func TestLunarPhase(t *testing.T) {
	cases := []struct {
		sun, moon float64
		name      string
		lit       float64
		waxing    bool
	}{
		{100, 100, "New Moon", 0, true},
		{100, 145, "Waxing Crescent", 0.1464466, true},
		{100, 190, "First Quarter", 0.5, true},
		{350, 60, "First Quarter", 0.3289899, true},
		{100, 280, "Full Moon", 1, false},
		{100, 10, "Last Quarter", 0.5, false},
		{280.37, 223.32, "Waning Crescent", 0.2280465, false},
		{100, 80, "New Moon", 0.0301537, false},
	}
	for _, tc := range cases {
		p := chart.LunarPhase(tc.sun, tc.moon)
		assert.Equal(t, tc.name, p.Name, "sun %v moon %v", tc.sun, tc.moon)
		assert.InDelta(t, tc.lit, p.Illumination, 1e-6, "sun %v moon %v", tc.sun, tc.moon)
		assert.Equal(t, tc.waxing, p.Waxing, "sun %v moon %v", tc.sun, tc.moon)
	}
}
