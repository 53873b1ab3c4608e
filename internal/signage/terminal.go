package signage

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/brailler/internal/viz"
)

// RenderTerminal renders the sign as a bordered panel. With dots set the
// Braille rows are also drawn as large dot grids.
func RenderTerminal(s Sign, l Layout, theme viz.Theme, dots bool) string {
	if s.HighContrast {
		theme = viz.ThemeContrast
	}
	st := viz.NewStyles(theme)

	parts := []string{
		st.Title.Render(s.Title),
		st.Text.Render(s.Text),
		"",
	}
	for _, line := range s.Lines(l.CellsPerLine) {
		parts = append(parts, st.Braille.Render(line))
		if dots {
			parts = append(parts, st.BigCells(line, 2), "")
		}
	}

	return st.Panel.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(theme.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
