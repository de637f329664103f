// Package textlayout resolves reading direction, alignment, font candidates
// and line breaks for text elements. Width measurement is injected so the
// breaking behavior does not depend on any installed font.
package textlayout

import (
	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

// MeasureFunc returns the rendered width of a single line of text.
type MeasureFunc func(s string) float64

// Layout is the fully resolved drawing plan for one text element.
type Layout struct {
	Direction scene.Direction
	Align     scene.Align
	Lines     []string
	// Background is the box to fill behind the text, present only when
	// the element sets a background color.
	Background *ports.Rect
}

// ComposedText returns the text as measured and wrapped: the prefix
// concatenated immediately before the body, with no separator.
func ComposedText(el *scene.Text) string {
	return el.Prefix + el.Text
}

// Resolve computes the layout for one text element.
func Resolve(el *scene.Text, measure MeasureFunc) Layout {
	text := ComposedText(el)

	dir := el.Direction
	if dir == scene.DirectionAuto {
		dir = DetectDirection(text)
	}
	align := RemapAlign(el.Align, dir)

	l := Layout{
		Direction: dir,
		Align:     align,
		Lines:     BreakLines(text, el.MaxWidth, el.MaxLines, measure),
	}
	if el.BackgroundColor != nil {
		box := BackgroundBox(el, align, measure)
		l.Background = &box
	}
	return l
}

// DetectDirection scans the text for Arabic-script codepoints and reports
// RTL when any is found. This is direction detection only, not full
// bidirectional reordering.
func DetectDirection(text string) scene.Direction {
	for _, r := range text {
		if isArabic(r) {
			return scene.DirectionRTL
		}
	}
	return scene.DirectionLTR
}

// isArabic reports whether the rune falls in the Arabic block, Arabic
// Supplement, Arabic Extended-A, or Arabic Presentation Forms A/B.
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// RemapAlign converts a start/end alignment into a physical one: under RTL
// "left" means the start of the reading direction and renders right-aligned,
// and vice versa. Center is unaffected.
func RemapAlign(a scene.Align, dir scene.Direction) scene.Align {
	if dir != scene.DirectionRTL {
		return a
	}
	switch a {
	case scene.AlignLeft:
		return scene.AlignRight
	case scene.AlignRight:
		return scene.AlignLeft
	default:
		return a
	}
}

// rtlFallbacks are family names tried for Arabic-script text before the
// platform default, in priority order.
var rtlFallbacks = []string{
	"UKIJBasma",
	"Noto Naskh Arabic",
	"Noto Sans Arabic",
	"Amiri",
	"Geeza Pro",
	"DejaVu Sans",
	"Arial",
}

// FontCandidates builds the ordered family list for font resolution: the
// requested family first, then the RTL-capable fallbacks when the direction
// is RTL. The resolver appends its own built-in default.
func FontCandidates(family string, dir scene.Direction) []string {
	var out []string
	if family != "" {
		out = append(out, family)
	}
	if dir == scene.DirectionRTL {
		out = append(out, rtlFallbacks...)
	}
	return out
}

// BreakLines wraps text greedily one codepoint at a time. With maxWidth 0
// the text stays on a single line no matter how wide it measures. With
// maxLines > 0 the line count is capped: once the cap is hit, scanning stops,
// the pending buffer becomes the final line and loses its last three runes
// to the "..." marker.
func BreakLines(text string, maxWidth float64, maxLines int, measure MeasureFunc) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	var buf []rune
	truncated := false

	for _, r := range text {
		if len(buf) > 0 && measure(string(buf)+string(r)) > maxWidth {
			if maxLines > 0 && len(lines) >= maxLines-1 {
				// No room for another committed line; the rest of
				// the text is dropped.
				truncated = true
				break
			}
			lines = append(lines, string(buf))
			buf = buf[:0]
		}
		buf = append(buf, r)
	}

	if len(buf) > 0 {
		line := string(buf)
		if truncated {
			line = Ellipsize(line)
		}
		lines = append(lines, line)
	}
	return lines
}

// Ellipsize drops the last three runes and appends the literal "..." marker.
func Ellipsize(line string) string {
	r := []rune(line)
	if len(r) <= 3 {
		return "..."
	}
	return string(r[:len(r)-3]) + "..."
}

// BackgroundBox computes the filled box behind a text block. The box width
// comes from the explicit width, the wrap width, or the measured single-line
// width of the composed text, plus horizontal padding; the box top sits one
// font size plus padding above the first baseline. Horizontal placement
// follows the resolved alignment.
func BackgroundBox(el *scene.Text, align scene.Align, measure MeasureFunc) ports.Rect {
	width := el.Width
	if width == 0 {
		base := el.MaxWidth
		if base == 0 {
			base = measure(ComposedText(el))
		}
		width = base + 2*el.Padding
	}

	height := el.Height
	if height == 0 {
		height = el.FontSize + 2*el.Padding
	}

	x := el.X
	switch align {
	case scene.AlignCenter:
		x = el.X - width/2
	case scene.AlignRight:
		x = el.X - width
	}

	return ports.Rect{
		X:      x,
		Y:      el.Y - el.FontSize - el.Padding,
		Width:  width,
		Height: height,
	}
}
