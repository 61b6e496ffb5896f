package browser

import (
	"regexp"
	"strings"
)

// Row color tags. Hosts map them onto whatever palette they render with.
const (
	ColorDestroyed = "red"
	ColorActive    = "white"
	ColorInactive  = "silver"
)

var (
	colorSpanRe = regexp.MustCompile(`^<color=([^>]*)>(.*)</color>$`)
	colorTagRe  = regexp.MustCompile(`</?color(=[^>]*)?>`)
)

// Colorize wraps s in a color tag.
func Colorize(color, s string) string {
	return "<color=" + color + ">" + s + "</color>"
}

// SplitColor returns the color tag and body of a single colored span. Text
// without a surrounding tag comes back with an empty color.
func SplitColor(text string) (color, body string) {
	m := colorSpanRe.FindStringSubmatch(text)
	if m == nil {
		return "", text
	}
	return m[1], m[2]
}

// PlainText drops all color tags.
func PlainText(text string) string {
	if !strings.Contains(text, "color") {
		return text
	}
	return colorTagRe.ReplaceAllString(text, "")
}
