package render

import (
	"fmt"

	"github.com/intellecat/AstroCore/chart"
)

// Natal draws a single chart: zodiac, degree scale, houses, one resolved
// planet ring and the aspect core.
func Natal(c *chart.Chart, opts Options) string {
	l := NewNatalLayout(opts.radius())
	bodies := c.Filter(opts.Bodies)

	var d document
	d.begin(opts, c.Meta.Name)
	w := d.wheel(opts, rotationFor(c))
	drawFrame(w, l)
	w.houseLines(c.Houses, houseStyle{
		start:       l.HouseRing,
		end:         l.ZodiacInner,
		labelRadius: l.HouseRing + 12,
		angleRadius: l.AngleLabel,
	})
	w.planetRing("natal-planets", bodies, c.Houses, l.Planets, opts.MinDistance, opts.AvoidHouses)
	if opts.ShowAspects {
		aspects := c.Aspects
		if len(opts.Bodies) > 0 || aspects == nil {
			aspects = chart.CalculateAspects(bodies, nil)
		}
		w.aspectLines(aspects, l.AspectRadius)
	}
	caption(w, c.Phase)
	return d.end()
}

// Transit draws a natal wheel with the transiting bodies on an outer ring.
// Transit symbols never avoid the natal cusps. Aspect lines join main planets
// across the two charts.
func Transit(natal, transit *chart.Chart, opts Options) string {
	l := NewTransitLayout(opts.radius())
	inner := natal.Filter(opts.Bodies)
	outer := transit.Filter(opts.Bodies)

	var d document
	d.begin(opts, titleOf(natal, transit, "Transits"))
	w := d.wheel(opts, rotationFor(natal))
	w.circle(l.Radius, "var(--astro-color-paper)", "var(--astro-color-text)", 0.3)
	drawFrame(w, l.NatalLayout)
	w.houseLines(natal.Houses, houseStyle{
		start:       l.HouseRing,
		end:         l.ZodiacInner,
		labelRadius: l.HouseRing + 10,
		angleRadius: l.AngleLabel,
	})
	w.planetRing("natal-planets", inner, natal.Houses, l.Planets, opts.MinDistance, opts.AvoidHouses)
	w.planetRing("transit-planets", outer, nil, l.Transits, opts.TransitMinDistance, false)
	if opts.ShowAspects {
		w.aspectLines(chart.CalculateDualAspects(mainPlanets(inner), mainPlanets(outer), nil), l.AspectRadius)
	}
	return d.end()
}

// Synastry draws two people on one wheel. The first chart's houses set the
// rotation; its bodies fill the inner band and the second chart's the outer
// band. Both bands separate crowded bodies radially.
func Synastry(a, b *chart.Chart, opts Options) string {
	l := NewSynastryLayout(opts.radius())
	inner := a.Filter(opts.Bodies)
	outer := b.Filter(opts.Bodies)

	var d document
	d.begin(opts, titleOf(a, b, "Synastry"))
	w := d.wheel(opts, rotationFor(a))
	w.circle(l.ZodiacOuter, "var(--astro-color-paper)", "var(--astro-color-text)", 0.3)
	w.zodiac(l.ZodiacOuter, l.ZodiacInner, l.ZodiacSymbol)
	w.degreeScale(l.Degrees)
	w.circle(l.Outer.Inner, "none", "var(--astro-color-text)", 0.2)
	w.circle(l.Inner.Inner, "none", "var(--astro-color-text)", 0.2)
	w.houseLines(a.Houses, houseStyle{
		start:       l.HouseRing,
		end:         l.Inner.Outer,
		labelRadius: l.HouseRing + 10,
	})
	w.stackedRing("synastry-outer", outer, l.Outer, opts.SynastryMinDistance)
	w.stackedRing("synastry-inner", inner, l.Inner, opts.SynastryMinDistance)
	if opts.ShowAspects {
		w.aspectLines(chart.CalculateDualAspects(mainPlanets(inner), mainPlanets(outer), nil), l.AspectRadius)
	}
	return d.end()
}

// Noon draws a chart with unknown birth time: no houses, Aries on the left.
func Noon(c *chart.Chart, opts Options) string {
	l := NewNoonLayout(opts.radius())
	bodies := c.Filter(opts.Bodies)

	var d document
	d.begin(opts, c.Meta.Name)
	w := d.wheel(opts, 0)
	drawFrame(w, l)
	w.planetRing("natal-planets", bodies, nil, l.Planets, opts.MinDistance, false)
	if opts.ShowAspects {
		w.aspectLines(chart.CalculateAspects(bodies, nil), l.AspectRadius)
	}
	caption(w, c.Phase)
	return d.end()
}

func drawFrame(w *wheel, l NatalLayout) {
	w.circle(l.ZodiacOuter, "var(--astro-color-paper)", "var(--astro-color-text)", 0.3)
	w.zodiac(l.ZodiacOuter, l.ZodiacInner, l.ZodiacSymbol)
	w.degreeScale(l.Degrees)
	w.circle(l.AspectRadius, "none", "var(--astro-color-text)", 0.2)
}

// rotationFor puts the Ascendant on the left when the chart has houses.
func rotationFor(c *chart.Chart) float64 {
	if len(c.Houses) == 0 {
		return 0
	}
	return AscendantRotation(c.Angles.Asc)
}

func caption(w *wheel, p chart.Phase) {
	if p.Name == "" {
		return
	}
	at := Point{X: 10, Y: float64(w.opts.Height) - 10}
	w.text(at, "astro-phase", fmt.Sprintf("%s %.0f%%", p.Name, p.Illumination*100))
	w.svg.WriteString("\n")
}

func titleOf(a, b *chart.Chart, kind string) string {
	switch {
	case a.Meta.Name != "" && b.Meta.Name != "":
		return fmt.Sprintf("%s: %s / %s", kind, a.Meta.Name, b.Meta.Name)
	case a.Meta.Name != "":
		return fmt.Sprintf("%s: %s", kind, a.Meta.Name)
	}
	return kind
}

func mainPlanets(bodies []chart.Body) []chart.Body {
	var out []chart.Body
	for _, b := range bodies {
		if chart.Contains(chart.MainPlanets, b.ID) {
			out = append(out, b)
		}
	}
	return out
}
