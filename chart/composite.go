package chart

import "github.com/intellecat/AstroCore/circle"

// Composite builds the midpoint composite of two charts. Each body present in
// both charts sits at the midpoint of its two positions along the shorter
// arc, and so does each house cusp when both charts have houses. Composite
// bodies have no motion.
func Composite(a, b *Chart) Chart {
	var out Chart
	out.Meta.Name = a.Meta.Name + " / " + b.Meta.Name

	for _, ba := range a.Bodies {
		bb, ok := b.Body(ba.ID)
		if !ok {
			continue
		}
		out.Bodies = append(out.Bodies, Body{
			ID:        ba.ID,
			Longitude: circle.Midpoint(ba.Longitude, bb.Longitude),
			Latitude:  (ba.Latitude + bb.Latitude) / 2,
		})
	}

	if len(a.Houses) == 12 && len(b.Houses) == 12 {
		out.Houses = make([]HouseCusp, 12)
		for i := range out.Houses {
			out.Houses[i].Longitude = circle.Midpoint(a.Houses[i].Longitude, b.Houses[i].Longitude)
		}
	}

	out.Fill()
	out.Aspects = CalculateAspects(out.Bodies, nil)
	if sun, ok := out.Body(Sun); ok {
		if moon, ok := out.Body(Moon); ok {
			out.Phase = LunarPhase(sun.Longitude, moon.Longitude)
		}
	}
	return out
}
