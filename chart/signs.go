package chart

import (
	"math"

	"github.com/intellecat/AstroCore/circle"
)

// Sign is one of the twelve 30 degree zodiac signs.
type Sign struct {
	Name     string
	Glyph    string
	Element  string
	Modality string
}

// Signs lists the zodiac in order from 0 degrees Aries.
var Signs = [12]Sign{
	{"Aries", "♈", "Fire", "Cardinal"},
	{"Taurus", "♉", "Earth", "Fixed"},
	{"Gemini", "♊", "Air", "Mutable"},
	{"Cancer", "♋", "Water", "Cardinal"},
	{"Leo", "♌", "Fire", "Fixed"},
	{"Virgo", "♍", "Earth", "Mutable"},
	{"Libra", "♎", "Air", "Cardinal"},
	{"Scorpio", "♏", "Water", "Fixed"},
	{"Sagittarius", "♐", "Fire", "Mutable"},
	{"Capricorn", "♑", "Earth", "Cardinal"},
	{"Aquarius", "♒", "Air", "Fixed"},
	{"Pisces", "♓", "Water", "Mutable"},
}

// SignIndex returns the index into Signs of the sign holding longitude.
func SignIndex(longitude float64) int {
	return int(circle.Normalize(longitude)/30) % 12
}

// SignOf returns the sign holding longitude.
func SignOf(longitude float64) Sign {
	return Signs[SignIndex(longitude)]
}

// DegreeInSign returns the position within the sign, in [0, 30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(circle.Normalize(longitude), 30)
}

// DegreesMinutes splits a degree value into whole degrees and whole arc minutes.
func DegreesMinutes(degree float64) (int, int) {
	d := math.Floor(degree)
	return int(d), int(math.Floor((degree - d) * 60))
}
