package chart

import (
	"math"

	"github.com/intellecat/AstroCore/circle"
)

// AspectType names a major aspect.
type AspectType string

const (
	Conjunction AspectType = "Conjunction"
	Opposition  AspectType = "Opposition"
	Trine       AspectType = "Trine"
	Square      AspectType = "Square"
	Sextile     AspectType = "Sextile"
)

// AspectDef is an aspect's exact angle and allowed orb, in degrees.
type AspectDef struct {
	Type  AspectType
	Angle float64
	Orb   float64
}

// DefaultAspects returns the five major aspects with their usual orbs.
func DefaultAspects() []AspectDef {
	return []AspectDef{
		{Conjunction, 0, 8},
		{Opposition, 180, 8},
		{Trine, 120, 8},
		{Square, 90, 8},
		{Sextile, 60, 6},
	}
}

// Aspect is an aspect found between two bodies.
type Aspect struct {
	A, B  Body
	Type  AspectType
	Angle float64 // actual separation
	Orb   float64 // distance from exact
	// Applying is true when the bodies' daily motion brings the aspect closer to exact.
	Applying bool
}

// CalculateAspects finds every aspect between pairs of bodies. A nil defs
// uses DefaultAspects.
func CalculateAspects(bodies []Body, defs []AspectDef) []Aspect {
	if defs == nil {
		defs = DefaultAspects()
	}
	var out []Aspect
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			out = appendAspects(out, bodies[i], bodies[j], defs)
		}
	}
	return out
}

// CalculateDualAspects finds every aspect between a body of a and a body of
// b, as in synastry and transit charts.
func CalculateDualAspects(a, b []Body, defs []AspectDef) []Aspect {
	if defs == nil {
		defs = DefaultAspects()
	}
	var out []Aspect
	for _, x := range a {
		for _, y := range b {
			out = appendAspects(out, x, y, defs)
		}
	}
	return out
}

func appendAspects(out []Aspect, a, b Body, defs []AspectDef) []Aspect {
	angle := circle.AngularDifference(a.Longitude, b.Longitude)
	for _, d := range defs {
		orb := math.Abs(angle - d.Angle)
		if orb > d.Orb {
			continue
		}
		out = append(out, Aspect{
			A:        a,
			B:        b,
			Type:     d.Type,
			Angle:    angle,
			Orb:      orb,
			Applying: applying(angle, d.Angle, a, b),
		})
	}
	return out
}

// applying projects both bodies one day ahead and checks whether the gap to
// the exact angle shrinks.
func applying(angle, exact float64, a, b Body) bool {
	next := circle.AngularDifference(a.Longitude+a.Speed, b.Longitude+b.Speed)
	return math.Abs(next-exact) < math.Abs(angle-exact)
}
