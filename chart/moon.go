package chart

import (
	"math"

	"github.com/intellecat/AstroCore/circle"
)

var phaseNames = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// Phase describes the Moon's phase.
type Phase struct {
	Name string
	// Illumination is the lit fraction of the disc, in [0, 1].
	Illumination float64
	// Age is how far the Moon is ahead of the Sun, in [0, 360).
	Age    float64
	Waxing bool
}

// LunarPhase computes the phase from the Sun's and Moon's longitudes. Each of
// the eight named phases spans 45 degrees centred on its exact angle.
func LunarPhase(sun, moon float64) Phase {
	age := circle.ClockwiseDistance(sun, moon)
	index := int(circle.Normalize(age+22.5)/45) % 8
	return Phase{
		Name:         phaseNames[index],
		Illumination: (1 - math.Cos(age*math.Pi/180)) / 2,
		Age:          age,
		Waxing:       age < circle.Half,
	}
}
