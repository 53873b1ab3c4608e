package signage

import (
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/viz"
)

// glyph width relative to font size, for sizing the canvas around text
const glyphWidth = 0.6

// RenderSVG draws the sign: title and text in large print, then the Braille
// rows as dots. High-contrast signs always use viz.ThemeContrast.
func RenderSVG(s Sign, l Layout, theme viz.Theme) string {
	if s.HighContrast {
		theme = viz.ThemeContrast
	}
	lines := s.Lines(l.CellsPerLine)

	brailleWidth := float64(l.CellsPerLine) * l.CellSpacing
	width := max(
		brailleWidth,
		float64(utf8.RuneCountInString(s.Title))*l.TitleSize*glyphWidth,
		float64(utf8.RuneCountInString(s.Text))*l.TextSize*glyphWidth,
	) + 2*l.Margin

	titleY := l.Margin + l.TitleSize
	textY := titleY + l.TextSize*1.6
	top := textY + l.TextSize*0.8
	height := top + float64(len(lines))*l.LineSpacing + l.Margin

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.1fmm" height="%.1fmm" viewBox="0 0 %.1f %.1f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-weight="bold" font-size="%.1f" fill="%s">`,
		l.Margin, titleY, l.TitleSize, theme.Text)
	_ = xml.EscapeText(&sb, []byte(s.Title))
	sb.WriteString("</text>\n")

	fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" fill="%s">`,
		l.Margin, textY, l.TextSize, theme.Text)
	_ = xml.EscapeText(&sb, []byte(s.Text))
	sb.WriteString("</text>\n")

	radius := l.DotDiameter / 2
	var raised, guides strings.Builder

	for row, line := range lines {
		col := 0
		for _, r := range line {
			c, err := braille.ParseCell(r)
			if err == nil {
				baseX := l.Margin + float64(col)*l.CellSpacing
				baseY := top + float64(row)*l.LineSpacing
				for d := 1; d <= 6; d++ {
					cx := baseX + float64((d-1)/3)*l.DotSpacing + radius
					cy := baseY + float64((d-1)%3)*l.DotSpacing + radius
					switch {
					case c.Has(d):
						fmt.Fprintf(&raised, `<circle class="dot" cx="%.2f" cy="%.2f" r="%.2f"/>
`, cx, cy, radius)
					case l.Guides:
						fmt.Fprintf(&guides, `<circle class="guide" cx="%.2f" cy="%.2f" r="%.2f"/>
`, cx, cy, radius*0.4)
					}
				}
			}
			col++
		}
	}

	if guides.Len() > 0 {
		fmt.Fprintf(&sb, "<g fill=\"%s\" opacity=\"0.35\">\n%s</g>\n", theme.Muted, guides.String())
	}
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n%s</g>\n", theme.Text, raised.String())
	sb.WriteString("</svg>")
	return sb.String()
}
