package render

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// escapeXML escapes text for use in SVG content and attribute values.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
