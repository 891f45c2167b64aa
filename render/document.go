package render

import (
	"fmt"
	"strings"
)

// document accumulates one SVG file.
type document struct {
	svg strings.Builder
}

// begin writes the prolog, background and stylesheet.
func (d *document) begin(opts Options, title string) {
	fmt.Fprintf(&d.svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%[1]d" height="%[2]d" viewBox="0 0 %[1]d %[2]d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%[3]s"/>
<defs>
<style>
%[4]s</style>
</defs>
`, opts.Width, opts.Height, escapeXML(opts.Theme.Colors.Background), opts.Theme.styles())
	if title != "" {
		fmt.Fprintf(&d.svg, "<title>%s</title>\n", escapeXML(title))
		fmt.Fprintf(&d.svg, `<text x="10" y="20" class="astro-title">%s</text>`+"\n", escapeXML(title))
	}
}

// wheel returns a drawing surface centred on the canvas.
func (d *document) wheel(opts Options, rotation float64) *wheel {
	return &wheel{
		svg:      &d.svg,
		cx:       float64(opts.Width) / 2,
		cy:       float64(opts.Height) / 2,
		rotation: rotation,
		opts:     opts,
	}
}

func (d *document) end() string {
	d.svg.WriteString("</svg>\n")
	return d.svg.String()
}
