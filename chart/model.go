package chart

import (
	"time"

	"github.com/intellecat/AstroCore/circle"
	"github.com/intellecat/AstroCore/collision"
)

// Body is a body's position plus the fields derived from it.
type Body struct {
	ID         BodyID
	Longitude  float64
	Latitude   float64
	Speed      float64 // degrees per day
	Retrograde bool

	// Derived by Fill.
	Sign   Sign
	Degree float64
	House  int
}

// HouseCusp is the start of a house.
type HouseCusp struct {
	Number    int
	Longitude float64
	Sign      Sign
	Degree    float64
}

// Angles holds the four chart angles.
type Angles struct {
	Asc float64
	MC  float64
	Dsc float64
	IC  float64
}

// AnglesFrom derives the opposite angles from the Ascendant and Midheaven.
func AnglesFrom(asc, mc float64) Angles {
	return Angles{
		Asc: circle.Normalize(asc),
		MC:  circle.Normalize(mc),
		Dsc: circle.Normalize(asc + circle.Half),
		IC:  circle.Normalize(mc + circle.Half),
	}
}

// Location is a place on Earth in degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// HouseSystem is the single-letter house system code used by ephemeris libraries.
type HouseSystem string

const (
	Placidus      HouseSystem = "P"
	Koch          HouseSystem = "K"
	WholeSign     HouseSystem = "W"
	Equal         HouseSystem = "E"
	Regiomontanus HouseSystem = "R"
	Campanus      HouseSystem = "C"
	Porphyry      HouseSystem = "O"
)

// Meta describes how a chart was cast.
type Meta struct {
	Name        string
	Time        time.Time
	Location    Location
	HouseSystem HouseSystem
}

// Chart is a fully populated chart.
type Chart struct {
	Bodies  []Body
	Houses  []HouseCusp
	Angles  Angles
	Aspects []Aspect
	Phase   Phase
	Meta    Meta
}

// Body returns the body with the given id.
func (c *Chart) Body(id BodyID) (Body, bool) {
	for _, b := range c.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}

// Filter returns the bodies whose id is in ids, in chart order.
// An empty ids keeps every body.
func (c *Chart) Filter(ids []BodyID) []Body {
	if len(ids) == 0 {
		return c.Bodies
	}
	var out []Body
	for _, b := range c.Bodies {
		if Contains(ids, b.ID) {
			out = append(out, b)
		}
	}
	return out
}

// Points converts bodies to resolver input.
func Points(bodies []Body) []collision.Body {
	out := make([]collision.Body, len(bodies))
	for i, b := range bodies {
		out[i] = collision.Body{ID: string(b.ID), Longitude: b.Longitude}
	}
	return out
}

// Boundaries converts house cusps to resolver input.
func Boundaries(houses []HouseCusp) []collision.Boundary {
	out := make([]collision.Boundary, len(houses))
	for i, h := range houses {
		out[i] = collision.Boundary{Index: h.Number, Longitude: h.Longitude}
	}
	return out
}

// Points returns the chart's bodies as resolver input.
func (c *Chart) Points() []collision.Body { return Points(c.Bodies) }

// Boundaries returns the chart's cusps as resolver input.
func (c *Chart) Boundaries() []collision.Boundary { return Boundaries(c.Houses) }

// Fill normalizes longitudes and recomputes every derived field: signs,
// degrees, house placements and the retrograde flag. Angles are taken from
// the first and tenth cusps when the chart has houses and no angles set.
func (c *Chart) Fill() {
	for i := range c.Houses {
		h := &c.Houses[i]
		h.Number = i + 1
		h.Longitude = circle.Normalize(h.Longitude)
		h.Sign = SignOf(h.Longitude)
		h.Degree = DegreeInSign(h.Longitude)
	}
	if len(c.Houses) == 12 && c.Angles == (Angles{}) {
		c.Angles = AnglesFrom(c.Houses[0].Longitude, c.Houses[9].Longitude)
	}
	for i := range c.Bodies {
		b := &c.Bodies[i]
		b.Longitude = circle.Normalize(b.Longitude)
		b.Sign = SignOf(b.Longitude)
		b.Degree = DegreeInSign(b.Longitude)
		b.House = HousePlacement(b.Longitude, c.Houses)
		b.Retrograde = b.Retrograde || b.Speed < 0
	}
}
