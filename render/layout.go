package render

// Layouts are pure geometry: every radius is derived from the main radius
// so a wheel scales with the canvas.

// Ring places one ring of body symbols.
type Ring struct {
	Symbol     float64 // radius of the glyph centres
	Degree     float64 // radius of the degree labels
	TickStart  float64 // where a body's marker starts, at its true longitude
	TickLength float64
}

// Band is a stacked ring between two radii, used by synastry wheels.
type Band struct {
	Outer, Inner float64
	Symbol       float64 // radius of track 0
	TickStart    float64
	TickLength   float64
	OrbitStep    float64 // radial distance between tracks
}

// DegreeScale is the 360 tick scale drawn inside the zodiac band.
type DegreeScale struct {
	Radius               float64
	Small, Medium, Large float64
}

// NatalLayout is a single wheel: zodiac band, degree scale, planets, houses
// and the aspect core.
type NatalLayout struct {
	Radius       float64
	ZodiacOuter  float64
	ZodiacInner  float64
	ZodiacSymbol float64
	Degrees      DegreeScale
	Planets      Ring
	HouseRing    float64
	AngleLabel   float64
	AspectRadius float64
}

// NewNatalLayout lays out a natal wheel of radius r.
func NewNatalLayout(r float64) NatalLayout {
	return NatalLayout{
		Radius:       r,
		ZodiacOuter:  r,
		ZodiacInner:  r - 45,
		ZodiacSymbol: r - 22,
		Degrees:      DegreeScale{Radius: r - 45, Small: 3, Medium: 6, Large: 10},
		Planets:      Ring{Symbol: r - 75, Degree: r - 95, TickStart: r - 45, TickLength: 10},
		HouseRing:    r * 0.5,
		AngleLabel:   r * 0.45,
		AspectRadius: r * 0.4,
	}
}

// NewNoonLayout is the natal layout without houses: the aspect core grows
// to the house ring.
func NewNoonLayout(r float64) NatalLayout {
	l := NewNatalLayout(r)
	l.AspectRadius = r * 0.5
	return l
}

// TransitLayout is a natal wheel compressed to make room for an outer ring of
// transiting bodies.
type TransitLayout struct {
	NatalLayout
	Transits Ring
	// BandInner is the boundary between the transit band and the natal zodiac.
	BandInner float64
}

// NewTransitLayout reserves the outer 15% of r for transits.
func NewTransitLayout(r float64) TransitLayout {
	inner := r - r*0.15
	return TransitLayout{
		NatalLayout: NatalLayout{
			Radius:       r,
			ZodiacOuter:  inner,
			ZodiacInner:  inner - 35,
			ZodiacSymbol: inner - 17,
			Degrees:      DegreeScale{Radius: inner - 35, Small: 3, Medium: 5, Large: 8},
			Planets:      Ring{Symbol: inner - 60, Degree: inner - 75, TickStart: inner - 35, TickLength: 8},
			HouseRing:    inner * 0.55,
			AngleLabel:   inner * 0.52,
			AspectRadius: inner * 0.45,
		},
		Transits:  Ring{Symbol: r - 25, Degree: r - 6, TickStart: inner, TickLength: 8},
		BandInner: inner,
	}
}

// SynastryLayout nests two equally thick bands inside the zodiac: the second
// person outside, the first person inside, and the first person's houses and
// the cross aspects in the core.
type SynastryLayout struct {
	Radius       float64
	ZodiacOuter  float64
	ZodiacInner  float64
	ZodiacSymbol float64
	Degrees      DegreeScale
	Outer        Band
	Inner        Band
	HouseRing    float64
	AspectRadius float64
}

// synastryBand is the thickness of each person's band.
const synastryBand = 65.0

// NewSynastryLayout lays out a synastry wheel of radius r.
func NewSynastryLayout(r float64) SynastryLayout {
	zInner := r - 40
	outerEnd := zInner - synastryBand
	innerEnd := outerEnd - synastryBand
	return SynastryLayout{
		Radius:       r,
		ZodiacOuter:  r,
		ZodiacInner:  zInner,
		ZodiacSymbol: r - 20,
		Degrees:      DegreeScale{Radius: zInner, Small: 3, Medium: 5, Large: 8},
		Outer: Band{
			Outer: zInner, Inner: outerEnd, Symbol: zInner - 25,
			TickStart: zInner, TickLength: 10, OrbitStep: 18,
		},
		Inner: Band{
			Outer: outerEnd, Inner: innerEnd, Symbol: outerEnd - 25,
			TickStart: outerEnd, TickLength: 10, OrbitStep: 18,
		},
		HouseRing:    innerEnd,
		AspectRadius: innerEnd,
	}
}
