package render

import (
	"fmt"
	"strings"
)

// MarkerStyle selects how a body's true longitude is marked on the wheel.
type MarkerStyle string

const (
	// MarkerLine is a tick from the true longitude towards the symbol. It
	// slopes when the symbol was moved by collision resolution.
	MarkerLine MarkerStyle = "line"
	// MarkerDot is a small dot at the true longitude.
	MarkerDot MarkerStyle = "dot"
	// MarkerTriangle is a small triangle pointing at the wheel centre.
	MarkerTriangle MarkerStyle = "triangle"
	// MarkerNone draws nothing.
	MarkerNone MarkerStyle = "none"
)

// ParseMarkerStyle accepts the marker style names case-insensitively.
func ParseMarkerStyle(s string) (MarkerStyle, error) {
	switch m := MarkerStyle(strings.ToLower(strings.TrimSpace(s))); m {
	case MarkerLine, MarkerDot, MarkerTriangle, MarkerNone:
		return m, nil
	case "":
		return MarkerLine, nil
	default:
		return "", fmt.Errorf("unknown marker style %q", s)
	}
}

// drawMarker draws the marker for a body whose true longitude projects to
// start and whose symbol sits at target. center is the wheel centre.
func drawMarker(svg *strings.Builder, style MarkerStyle, start, target, center Point, length float64) {
	switch style {
	case MarkerNone:
		return

	case MarkerDot:
		fmt.Fprintf(svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" class="astro-marker"/>`,
			start.X, start.Y, length/4)

	case MarkerTriangle:
		// Apex points at the centre, base sits on the ring.
		apex, ok := towards(start, center, length)
		if !ok {
			return
		}
		half := length / 3
		ux, uy := (apex.X-start.X)/length, (apex.Y-start.Y)/length
		fmt.Fprintf(svg, `<polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" class="astro-marker"/>`,
			apex.X, apex.Y,
			start.X-uy*half, start.Y+ux*half,
			start.X+uy*half, start.Y-ux*half)

	default:
		end, ok := towards(start, target, length)
		if !ok {
			return
		}
		fmt.Fprintf(svg, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" class="astro-marker"/>`,
			start.X, start.Y, end.X, end.Y)
	}
}
