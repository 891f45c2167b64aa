package render

import (
	"github.com/intellecat/AstroCore/chart"
	"github.com/intellecat/AstroCore/collision"
)

// Options controls what a renderer draws and how symbols are separated.
type Options struct {
	Width, Height int

	// Angular separation, in degrees, for the single-ring resolver on
	// natal and inner rings, transit rings and synastry bands.
	MinDistance         float64
	TransitMinDistance  float64
	SynastryMinDistance float64
	HouseBuffer         float64
	AvoidHouses         bool

	ShowDegrees    bool
	ShowMinutes    bool
	ShowSigns      bool
	ShowAspects    bool
	ShowRetrograde bool

	Marker     MarkerStyle
	SymbolSize int
	Theme      Theme

	// Bodies limits which bodies are drawn. Empty draws all of them.
	Bodies []chart.BodyID
}

// DefaultOptions returns an 800x800 wheel with the default resolver spacing.
func DefaultOptions() Options {
	return Options{
		Width:               800,
		Height:              800,
		MinDistance:         collision.DefaultMinDistance,
		TransitMinDistance:  collision.DefaultMinDistance,
		SynastryMinDistance: collision.DefaultMinDistance,
		HouseBuffer:         collision.DefaultBoundaryBuffer,
		AvoidHouses:         true,
		ShowDegrees:         true,
		ShowSigns:           true,
		ShowAspects:         true,
		ShowRetrograde:      true,
		Marker:              MarkerLine,
		SymbolSize:          18,
		Theme:               DefaultTheme(),
	}
}

// radius is the main wheel radius for the canvas, leaving a margin.
func (o Options) radius() float64 {
	return 0.45 * float64(min(o.Width, o.Height))
}
