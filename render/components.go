package render

import (
	"fmt"
	"strings"

	"github.com/intellecat/AstroCore/chart"
	"github.com/intellecat/AstroCore/circle"
	"github.com/intellecat/AstroCore/collision"
	"github.com/intellecat/AstroCore/internal/debug"
)

// wheel is the drawing surface shared by the components of one chart.
type wheel struct {
	svg      *strings.Builder
	cx, cy   float64
	rotation float64
	opts     Options
}

func (w *wheel) at(r, longitude float64) Point {
	return PolarToCartesian(w.cx, w.cy, r, longitude, w.rotation)
}

func (w *wheel) line(a, b Point, class string) {
	fmt.Fprintf(w.svg, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" class="%s"/>`+"\n",
		a.X, a.Y, b.X, b.Y, class)
}

func (w *wheel) text(p Point, class, s string) {
	fmt.Fprintf(w.svg, `<text x="%.2f" y="%.2f" class="%s">%s</text>`, p.X, p.Y, class, escapeXML(s))
}

// circle draws a plain ring. fill and stroke are CSS values.
func (w *wheel) circle(r float64, fill, stroke string, strokeOpacity float64) {
	fmt.Fprintf(w.svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-opacity="%.2f"/>`+"\n",
		w.cx, w.cy, r, fill, stroke, strokeOpacity)
}

// zodiac draws the sign band: two rings, twelve dividers and the sign glyphs
// centred in each sector.
func (w *wheel) zodiac(outer, inner, symbol float64) {
	w.svg.WriteString(`<g id="zodiac-wheel">` + "\n")
	fmt.Fprintf(w.svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" class="astro-zodiac-ring"/>`+"\n", w.cx, w.cy, outer)
	fmt.Fprintf(w.svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" class="astro-zodiac-ring"/>`+"\n", w.cx, w.cy, inner)
	for i, sign := range chart.Signs {
		lon := float64(i) * 30
		w.line(w.at(outer, lon), w.at(inner, lon), "astro-zodiac-line")
		w.text(w.at(symbol, lon+15), "astro-zodiac-glyph", sign.Glyph)
		w.svg.WriteString("\n")
	}
	w.svg.WriteString("</g>\n")
}

// degreeScale draws one tick per degree, longer every 5 and 10 degrees.
func (w *wheel) degreeScale(s DegreeScale) {
	w.svg.WriteString(`<g id="degree-rings">` + "\n")
	for i := 0; i < 360; i++ {
		length, class := s.Small, "astro-degree-tick"
		switch {
		case i%10 == 0:
			length, class = s.Large, "astro-degree-tick major"
		case i%5 == 0:
			length, class = s.Medium, "astro-degree-tick medium"
		}
		lon := float64(i)
		w.line(w.at(s.Radius, lon), w.at(s.Radius+length, lon), class)
	}
	w.svg.WriteString("</g>\n")
}

// houseStyle configures houseLines.
type houseStyle struct {
	start, end  float64 // cusp lines run between these radii
	labelRadius float64 // house numbers
	angleRadius float64 // ASC/IC/DSC/MC labels; 0 hides them
}

var angleNames = map[int]string{1: "ASC", 4: "IC", 7: "DSC", 10: "MC"}

// houseLines draws the house ring, cusp lines (angles emphasised), house
// numbers midway through each house and the angle labels.
func (w *wheel) houseLines(houses []chart.HouseCusp, s houseStyle) {
	if len(houses) == 0 {
		return
	}
	w.svg.WriteString(`<g class="house-lines">` + "\n")
	fmt.Fprintf(w.svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" class="astro-house-ring"/>`+"\n", w.cx, w.cy, s.start)
	for i, h := range houses {
		next := houses[(i+1)%len(houses)]
		name, isAngle := angleNames[h.Number]

		class := "astro-house-line"
		if isAngle {
			class += " angle"
		}
		w.line(w.at(s.start, h.Longitude), w.at(s.end, h.Longitude), class)

		if isAngle && s.angleRadius > 0 {
			w.text(w.at(s.angleRadius, h.Longitude), "astro-angle-label", name)
			deg, _ := chart.DegreesMinutes(h.Degree)
			w.text(w.at(s.angleRadius-10, h.Longitude), "astro-angle-degree", fmt.Sprintf("%d°", deg))
		}

		mid := h.Longitude + circle.ClockwiseDistance(h.Longitude, next.Longitude)/2
		w.text(w.at(s.labelRadius, mid), "astro-house-label", fmt.Sprint(h.Number))
		w.svg.WriteString("\n")
	}
	w.svg.WriteString("</g>\n")
}

// symbol draws a body glyph with its mean/true indicator and, when asked,
// the retrograde mark.
func (w *wheel) symbol(b chart.Body, at Point, size int, retrograde bool) {
	fmt.Fprintf(w.svg, `<text x="%.2f" y="%.2f" font-size="%d" class="astro-planet-symbol">%s</text>`,
		at.X, at.Y, size, escapeXML(b.ID.Glyph()))
	if ind := b.ID.Indicator(); ind != "" {
		w.text(Point{at.X + 8, at.Y - 8}, "astro-planet-indicator", ind)
	}
	if retrograde && b.Retrograde {
		w.text(Point{at.X + 6, at.Y + 2}, "astro-planet-retrograde", "r")
	}
}

// labelsOutward reports whether labels of a ring stack outwards, as they do
// on an outer transit ring whose degree labels sit outside the glyphs.
func (r Ring) labelsOutward() bool { return r.Degree > r.Symbol }

// planetRing resolves the bodies along one ring and draws marker, glyph and
// labels for each. Cusps are avoided when avoidHouses is set and houses are
// given.
func (w *wheel) planetRing(id string, bodies []chart.Body, houses []chart.HouseCusp, ring Ring, minDistance float64, avoidHouses bool) {
	res := collision.ResolveWithReport(chart.Points(bodies), chart.Boundaries(houses),
		minDistance, w.opts.HouseBuffer, avoidHouses && len(houses) > 0)
	debug.Printf("%s: %d bodies resolved in %d passes (converged: %t)", id, len(bodies), res.Iterations, res.Converged)

	step := -18.0
	if ring.labelsOutward() {
		step = 18
	}

	fmt.Fprintf(w.svg, `<g class="planet-ring" id="%s">`+"\n", id)
	for _, adj := range res.Positions {
		b := bodies[adj.Index]
		debug.Printf("  %-12s %7.2f -> %7.2f", adj.ID, adj.OriginalLongitude, adj.AdjustedLongitude)

		fmt.Fprintf(w.svg, `<g class="astro-planet-%s">`, b.ID.Slug())
		sym := w.at(ring.Symbol, adj.AdjustedLongitude)
		drawMarker(w.svg, w.opts.Marker, w.at(ring.TickStart, adj.OriginalLongitude), sym, Point{w.cx, w.cy}, ring.TickLength)
		w.symbol(b, sym, w.opts.SymbolSize, w.opts.ShowRetrograde)

		label := ring.Degree
		deg, mins := chart.DegreesMinutes(b.Degree)
		if w.opts.ShowDegrees {
			w.text(w.at(label, adj.AdjustedLongitude), "astro-planet-degree", fmt.Sprintf("%d°", deg))
			label += step
		}
		if w.opts.ShowSigns {
			w.text(w.at(label, adj.AdjustedLongitude), "astro-planet-zodiac", b.Sign.Glyph)
			label += step
		}
		if w.opts.ShowMinutes {
			w.text(w.at(label, adj.AdjustedLongitude), "astro-planet-minute", fmt.Sprintf("%d'", mins))
		}
		w.svg.WriteString("</g>\n")
	}
	w.svg.WriteString("</g>\n")
}

// stackedRing separates colliding bodies radially: track n is drawn
// n*OrbitStep inside track 0.
func (w *wheel) stackedRing(id string, bodies []chart.Body, band Band, minDistance float64) {
	res := collision.ResolveStackedWithReport(chart.Points(bodies), minDistance)
	debug.Printf("%s: %d bodies stacked (converged: %t)", id, len(bodies), res.Converged)

	fmt.Fprintf(w.svg, `<g class="stacked-planet-ring" id="%s">`+"\n", id)
	for _, adj := range res.Positions {
		b := bodies[adj.Index]
		r := band.Symbol - float64(adj.RadialOffset)*band.OrbitStep
		sym := w.at(r, adj.AdjustedLongitude)

		fmt.Fprintf(w.svg, `<g class="astro-planet-%s">`, b.ID.Slug())
		w.line(w.at(band.TickStart, adj.OriginalLongitude), w.at(band.TickStart-band.TickLength, adj.OriginalLongitude), "astro-marker")
		w.symbol(b, sym, w.opts.SymbolSize-2, w.opts.ShowRetrograde)
		w.svg.WriteString("</g>\n")
	}
	w.svg.WriteString("</g>\n")
}

// aspectLines joins aspected bodies across the core at radius r.
func (w *wheel) aspectLines(aspects []chart.Aspect, r float64) {
	w.svg.WriteString(`<g id="aspect-lines">` + "\n")
	for _, a := range aspects {
		p1, p2 := w.at(r, a.A.Longitude), w.at(r, a.B.Longitude)
		fmt.Fprintf(w.svg, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="var(%s)" class="astro-aspect-line"/>`+"\n",
			p1.X, p1.Y, p2.X, p2.Y, aspectVar(a.Type))
	}
	w.svg.WriteString("</g>\n")
}
