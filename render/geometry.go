package render

import (
	"math"

	"github.com/intellecat/AstroCore/circle"
)

// Point is a position on the SVG canvas.
type Point struct {
	X, Y float64
}

// PolarToCartesian projects an ecliptic longitude at radius r around
// (cx, cy). With rotation 0, 0 degrees Aries sits at 9 o'clock and
// longitude increases counter-clockwise on screen. rotation is the
// longitude to place at 9 o'clock instead.
func PolarToCartesian(cx, cy, r, longitude, rotation float64) Point {
	theta := (circle.Half + longitude - rotation) * math.Pi / 180
	return Point{
		X: cx + r*math.Cos(theta),
		Y: cy - r*math.Sin(theta),
	}
}

// AscendantRotation returns the rotation that puts the Ascendant on the left
// horizon.
func AscendantRotation(asc float64) float64 {
	return circle.Normalize(asc)
}

// towards returns the point length units from start in the direction of target.
func towards(start, target Point, length float64) (Point, bool) {
	dx, dy := target.X-start.X, target.Y-start.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return start, false
	}
	ratio := length / dist
	return Point{X: start.X + dx*ratio, Y: start.Y + dy*ratio}, true
}
