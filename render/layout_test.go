package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatalLayoutNesting(t *testing.T) {
	l := NewNatalLayout(360)
	assert.Equal(t, 360.0, l.ZodiacOuter)
	assert.Greater(t, l.ZodiacOuter, l.ZodiacSymbol)
	assert.Greater(t, l.ZodiacSymbol, l.ZodiacInner)
	assert.Greater(t, l.ZodiacInner, l.Planets.Symbol)
	assert.Greater(t, l.Planets.Symbol, l.Planets.Degree)
	assert.Greater(t, l.Planets.Degree, l.HouseRing)
	assert.Greater(t, l.HouseRing, l.AspectRadius)
	assert.Equal(t, l.ZodiacInner, l.Planets.TickStart)

	noon := NewNoonLayout(360)
	assert.Equal(t, l.HouseRing, noon.AspectRadius)
}

func TestTransitLayoutLeavesOuterBand(t *testing.T) {
	l := NewTransitLayout(360)
	assert.InDelta(t, 306, l.BandInner, 1e-9)
	assert.Equal(t, l.BandInner, l.ZodiacOuter)
	assert.Greater(t, l.Transits.Symbol, l.BandInner)
	assert.Less(t, l.Transits.Symbol, l.Radius)
	assert.True(t, l.Transits.labelsOutward())
	assert.False(t, l.Planets.labelsOutward())
}

func TestSynastryLayoutBands(t *testing.T) {
	l := NewSynastryLayout(360)
	assert.Equal(t, l.ZodiacInner, l.Outer.Outer)
	assert.Equal(t, l.Outer.Inner, l.Inner.Outer)
	assert.InDelta(t, synastryBand, l.Outer.Outer-l.Outer.Inner, 1e-9)
	assert.InDelta(t, synastryBand, l.Inner.Outer-l.Inner.Inner, 1e-9)
	assert.Equal(t, l.Inner.Inner, l.AspectRadius)

	// The second track still sits inside its band.
	assert.Greater(t, l.Outer.Symbol-l.Outer.OrbitStep, l.Outer.Inner)
	assert.Greater(t, l.Inner.Symbol-l.Inner.OrbitStep, l.Inner.Inner)
}
