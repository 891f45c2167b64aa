package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/intellecat/AstroCore/chart"
)

// Theme holds the colors and font of a chart. Every color is written as a
// CSS custom property, so a theme file only needs the values it changes.
type Theme struct {
	FontFamily string `yaml:"font_family"`
	Colors     struct {
		Background string `yaml:"background"`
		Paper      string `yaml:"paper"`
		Text       string `yaml:"text"`
		Points     string `yaml:"points"` // Vertex, AntiVertex
	} `yaml:"colors"`
	Planets struct {
		Sun     string `yaml:"sun"`
		Moon    string `yaml:"moon"`
		Mercury string `yaml:"mercury"`
		Venus   string `yaml:"venus"`
		Mars    string `yaml:"mars"`
		Jupiter string `yaml:"jupiter"`
		Saturn  string `yaml:"saturn"`
		Uranus  string `yaml:"uranus"`
		Neptune string `yaml:"neptune"`
		Pluto   string `yaml:"pluto"`
		Chiron  string `yaml:"chiron"`
		Nodes   string `yaml:"nodes"`
		Lilith  string `yaml:"lilith"`
	} `yaml:"planets"`
	Aspects struct {
		Conjunction string `yaml:"conjunction"`
		Opposition  string `yaml:"opposition"`
		Trine       string `yaml:"trine"`
		Square      string `yaml:"square"`
		Sextile     string `yaml:"sextile"`
		Minor       string `yaml:"minor"`
	} `yaml:"aspects"`
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	var t Theme
	t.FontFamily = "sans-serif"

	t.Colors.Background = "#ffffff"
	t.Colors.Paper = "#ffffff"
	t.Colors.Text = "#333333"
	t.Colors.Points = "#666666"

	t.Planets.Sun = "#FFD700"
	t.Planets.Moon = "#909090"
	t.Planets.Mercury = "#87CEEB"
	t.Planets.Venus = "#FF69B4"
	t.Planets.Mars = "#FF4500"
	t.Planets.Jupiter = "#DAA520"
	t.Planets.Saturn = "#696969"
	t.Planets.Uranus = "#40E0D0"
	t.Planets.Neptune = "#4169E1"
	t.Planets.Pluto = "#8B0000"
	t.Planets.Chiron = "#9ACD32"
	t.Planets.Nodes = "#A52A2A"
	t.Planets.Lilith = "#000000"

	t.Aspects.Conjunction = "#FFD700"
	t.Aspects.Opposition = "#FF4500"
	t.Aspects.Trine = "#32CD32"
	t.Aspects.Square = "#FF0000"
	t.Aspects.Sextile = "#1E90FF"
	t.Aspects.Minor = "#A9A9A9"
	return t
}

// LoadTheme reads a YAML theme file over DefaultTheme. An empty path returns
// the default.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("error reading theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("error parsing theme file: %w", err)
	}
	return t, nil
}

// bodyColors pairs each body slug with its color.
func (t Theme) bodyColors() []struct{ slug, value string } {
	p := t.Planets
	return []struct{ slug, value string }{
		{chart.Sun.Slug(), p.Sun},
		{chart.Moon.Slug(), p.Moon},
		{chart.Mercury.Slug(), p.Mercury},
		{chart.Venus.Slug(), p.Venus},
		{chart.Mars.Slug(), p.Mars},
		{chart.Jupiter.Slug(), p.Jupiter},
		{chart.Saturn.Slug(), p.Saturn},
		{chart.Uranus.Slug(), p.Uranus},
		{chart.Neptune.Slug(), p.Neptune},
		{chart.Pluto.Slug(), p.Pluto},
		{chart.Chiron.Slug(), p.Chiron},
		{chart.MeanNode.Slug(), p.Nodes},
		{chart.TrueNode.Slug(), p.Nodes},
		{chart.SouthNode.Slug(), p.Nodes},
		{chart.LilithMean.Slug(), p.Lilith},
		{chart.LilithTrue.Slug(), p.Lilith},
		{chart.Vertex.Slug(), t.Colors.Points},
		{chart.AntiVertex.Slug(), t.Colors.Points},
		{chart.ParsFortunae.Slug(), t.Colors.Text},
	}
}

// aspectVar names the custom property for an aspect type.
func aspectVar(a chart.AspectType) string {
	switch a {
	case chart.Conjunction:
		return "--astro-color-aspect-conj"
	case chart.Opposition:
		return "--astro-color-aspect-opp"
	case chart.Trine:
		return "--astro-color-aspect-trine"
	case chart.Square:
		return "--astro-color-aspect-square"
	case chart.Sextile:
		return "--astro-color-aspect-sextile"
	}
	return "--astro-color-aspect-minor"
}

// CSSVariables renders the theme as a :root block of custom properties.
func (t Theme) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --astro-color-bg: %s;\n", t.Colors.Background)
	fmt.Fprintf(&b, "  --astro-color-paper: %s;\n", t.Colors.Paper)
	fmt.Fprintf(&b, "  --astro-color-text: %s;\n", t.Colors.Text)
	for _, c := range t.bodyColors() {
		fmt.Fprintf(&b, "  --astro-color-%s: %s;\n", c.slug, c.value)
	}
	a := t.Aspects
	fmt.Fprintf(&b, "  --astro-color-aspect-conj: %s;\n", a.Conjunction)
	fmt.Fprintf(&b, "  --astro-color-aspect-opp: %s;\n", a.Opposition)
	fmt.Fprintf(&b, "  --astro-color-aspect-trine: %s;\n", a.Trine)
	fmt.Fprintf(&b, "  --astro-color-aspect-square: %s;\n", a.Square)
	fmt.Fprintf(&b, "  --astro-color-aspect-sextile: %s;\n", a.Sextile)
	fmt.Fprintf(&b, "  --astro-color-aspect-minor: %s;\n", a.Minor)
	b.WriteString("}\n")
	return b.String()
}

// styles returns the full stylesheet: variables, base rules and one rule per
// body so each planet group picks up its color.
func (t Theme) styles() string {
	var b strings.Builder
	b.WriteString(t.CSSVariables())
	fmt.Fprintf(&b, "text { font-family: %s; fill: var(--astro-color-text); }\n", t.FontFamily)
	b.WriteString(baseStyles)
	for _, c := range t.bodyColors() {
		fmt.Fprintf(&b, ".astro-planet-%[1]s { fill: var(--astro-color-%[1]s); stroke: var(--astro-color-%[1]s); }\n", c.slug)
		fmt.Fprintf(&b, ".astro-planet-%[1]s .astro-marker { stroke: var(--astro-color-%[1]s); }\n", c.slug)
	}
	return b.String()
}

const baseStyles = `.astro-zodiac-ring { fill: none; stroke: var(--astro-color-text); stroke-opacity: 0.2; stroke-width: 1px; }
.astro-zodiac-line { stroke: var(--astro-color-text); stroke-opacity: 0.2; stroke-width: 1px; }
.astro-zodiac-glyph { font-size: 22px; text-anchor: middle; dominant-baseline: central; }
.astro-degree-tick { stroke: var(--astro-color-text); stroke-width: 0.5px; opacity: 0.2; }
.astro-degree-tick.medium { opacity: 0.3; }
.astro-degree-tick.major { opacity: 0.5; }
.astro-house-ring { fill: none; stroke: var(--astro-color-text); stroke-opacity: 0.1; }
.astro-house-line { stroke: var(--astro-color-text); stroke-width: 0.8px; opacity: 0.2; stroke-dasharray: 3,3; }
.astro-house-line.angle { stroke-width: 1.5px; opacity: 0.5; stroke-dasharray: none; }
.astro-house-label { font-size: 8px; text-anchor: middle; dominant-baseline: middle; opacity: 0.4; }
.astro-angle-label { font-size: 7px; font-weight: bold; text-anchor: middle; dominant-baseline: middle; opacity: 0.6; }
.astro-angle-degree { font-size: 6px; text-anchor: middle; dominant-baseline: middle; opacity: 0.4; }
.astro-planet-symbol { text-anchor: middle; dominant-baseline: central; fill: inherit; stroke: none; }
.astro-planet-indicator { font-size: 8px; fill: inherit; stroke: none; }
.astro-planet-retrograde { font-size: 0.6em; fill: inherit; stroke: none; }
.astro-planet-degree, .astro-planet-minute { font-size: 8px; text-anchor: middle; dominant-baseline: middle; opacity: 0.6; fill: var(--astro-color-text); stroke: none; }
.astro-planet-zodiac { font-size: 9px; text-anchor: middle; dominant-baseline: middle; fill: var(--astro-color-text); stroke: none; }
.astro-marker { stroke-width: 0.8px; stroke-opacity: 0.4; stroke: var(--astro-color-text); }
.astro-aspect-line { stroke-width: 1px; stroke-opacity: 0.6; fill: none; }
.astro-title { font-size: 12px; font-weight: bold; }
`
