// Package circle implements arithmetic on the 0-360 degree ecliptic circle.
//
// Two distance measures are provided and they are not interchangeable:
//
//   - ClockwiseDistance is directional. It answers "how far ahead of a is b
//     when travelling in the direction of increasing longitude".
//   - AngularDifference is symmetric. It is the shorter of the two arcs
//     between a and b and never exceeds 180 degrees.
//
// Ordering logic must use ClockwiseDistance; proximity checks where direction
// does not matter use AngularDifference.
package circle

import "math"

// Full is the size of the circle in degrees.
const Full = 360.0

// Half is half the circle in degrees.
const Half = 180.0

// Normalize maps any finite value into [0, 360).
// Negative input wraps from the top, so Normalize(-10) == 350.
func Normalize(d float64) float64 {
	r := math.Mod(d, Full)
	if r < 0 {
		r += Full
	}
	// -1e-15 + 360 rounds to exactly 360 in float64.
	if r >= Full {
		r -= Full
	}
	return r
}

// ClockwiseDistance returns the distance travelled from a to b in the
// direction of increasing longitude, in [0, 360).
func ClockwiseDistance(a, b float64) float64 {
	return Normalize(b - a)
}

// AngularDifference returns the shorter arc between a and b, in [0, 180].
func AngularDifference(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > Half {
		d = Full - d
	}
	return d
}

// SignedDistance returns the clockwise distance from a to b folded into
// (-180, 180]. A negative result means b lies behind a.
func SignedDistance(a, b float64) float64 {
	d := ClockwiseDistance(a, b)
	if d > Half {
		d -= Full
	}
	return d
}

// Midpoint returns the point halfway along the shorter arc from a to b.
// For exactly opposite points the arc clockwise from a is used.
func Midpoint(a, b float64) float64 {
	return Normalize(a + SignedDistance(a, b)/2)
}

// Within reports whether x lies on the clockwise arc that starts at start
// (inclusive) and ends at end (exclusive). When start == end the arc is empty.
func Within(x, start, end float64) bool {
	span := ClockwiseDistance(start, end)
	return ClockwiseDistance(start, x) < span
}
