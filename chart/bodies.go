package chart

import (
	"regexp"
	"strings"
)

// BodyID names a celestial body or calculated point.
type BodyID string

const (
	Sun          BodyID = "Sun"
	Moon         BodyID = "Moon"
	Mercury      BodyID = "Mercury"
	Venus        BodyID = "Venus"
	Mars         BodyID = "Mars"
	Jupiter      BodyID = "Jupiter"
	Saturn       BodyID = "Saturn"
	Uranus       BodyID = "Uranus"
	Neptune      BodyID = "Neptune"
	Pluto        BodyID = "Pluto"
	MeanNode     BodyID = "MeanNode"
	TrueNode     BodyID = "TrueNode"
	SouthNode    BodyID = "SouthNode"
	LilithMean   BodyID = "LilithMean"
	LilithTrue   BodyID = "LilithTrue"
	Vertex       BodyID = "Vertex"
	AntiVertex   BodyID = "AntiVertex"
	ParsFortunae BodyID = "ParsFortunae"
	Chiron       BodyID = "Chiron"
)

// StandardBodies are the bodies Calculate asks an Engine for by default.
// SouthNode, Vertex, AntiVertex and ParsFortunae are derived from them.
var StandardBodies = []BodyID{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
	MeanNode, TrueNode, LilithMean, LilithTrue, Chiron,
}

// MainPlanets are the bodies that take part in cross-chart aspects.
var MainPlanets = []BodyID{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

var glyphs = map[BodyID]string{
	Sun: "☉", Moon: "☽", Mercury: "☿", Venus: "♀", Mars: "♂",
	Jupiter: "♃", Saturn: "♄", Uranus: "♅", Neptune: "♆", Pluto: "♇",
	Chiron: "⚷", MeanNode: "☊", TrueNode: "☊", SouthNode: "☋",
	LilithMean: "⚸", LilithTrue: "⚸", ParsFortunae: "⊗",
	Vertex: "Vx", AntiVertex: "Av",
}

// Glyph returns the display symbol for id, or "?" for an unknown body.
func (id BodyID) Glyph() string {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return "?"
}

// Indicator returns "m" for mean points, "t" for true points and "" otherwise.
// The two node and Lilith variants share a glyph, so the indicator tells them apart.
func (id BodyID) Indicator() string {
	switch {
	case strings.Contains(string(id), "Mean"):
		return "m"
	case strings.Contains(string(id), "True"):
		return "t"
	}
	return ""
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Slug returns the kebab-case form of id, e.g. "mean-node".
func (id BodyID) Slug() string {
	return strings.ToLower(camelBoundary.ReplaceAllString(string(id), "$1-$2"))
}

// Contains reports whether ids includes id.
func Contains(ids []BodyID, id BodyID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
