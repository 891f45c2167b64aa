package chart

import "github.com/intellecat/AstroCore/circle"

// HousePlacement returns the number of the house holding longitude. Each
// house runs from its cusp up to, but not including, the next cusp. It
// returns 0 for a chart without houses and falls back to 1 when the cusps
// are degenerate.
func HousePlacement(longitude float64, cusps []HouseCusp) int {
	if len(cusps) == 0 {
		return 0
	}
	for i, c := range cusps {
		next := cusps[(i+1)%len(cusps)]
		if circle.Within(longitude, c.Longitude, next.Longitude) {
			return c.Number
		}
	}
	return 1
}

// EqualHouses builds twelve 30 degree houses starting at the Ascendant.
func EqualHouses(asc float64) []HouseCusp {
	out := make([]HouseCusp, 12)
	for i := range out {
		out[i] = HouseCusp{Number: i + 1, Longitude: circle.Normalize(asc + float64(i)*30)}
	}
	return out
}
