package viz

import (
	"strings"

	"github.com/san-kum/brailler/internal/braille"
)

// Six-dot cells drawn three rows high:
//
//	1 4
//	2 5
//	3 6
var dotRows = [3][2]int{
	{1, 4},
	{2, 5},
	{3, 6},
}

// BigCells draws each Braille cell of text as a 2x3 grid of dots, cells
// separated by gap spaces. Runes outside the Braille block are drawn blank.
func (s Styles) BigCells(text string, gap int) string {
	const on, off = "●", "○"

	var rows [3]strings.Builder
	first := true
	for _, r := range text {
		c, err := braille.ParseCell(r)
		if err != nil {
			c = braille.Cell(braille.BlankCell)
		}
		for i, pair := range dotRows {
			if !first {
				rows[i].WriteString(strings.Repeat(" ", gap))
			}
			for j, d := range pair {
				if j > 0 {
					rows[i].WriteByte(' ')
				}
				if c.Has(d) {
					rows[i].WriteString(s.DotOn.Render(on))
				} else {
					rows[i].WriteString(s.DotOff.Render(off))
				}
			}
		}
		first = false
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}
