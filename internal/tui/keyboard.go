package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/viz"
)

// Perkins layout: left hand f d s, right hand j k l.
var perkinsKeys = map[string]int{
	"f": 1,
	"d": 2,
	"s": 3,
	"j": 4,
	"k": 5,
	"l": 6,
}

// Keyboard is a six-key Braille entry model. Dots are toggled on a pending
// cell and committed into the buffer one cell at a time.
type Keyboard struct {
	codec   *braille.Codec
	theme   viz.Theme
	styles  viz.Styles
	cells   []rune
	pending braille.Cell
	quit    bool

	width  int
	height int
}

func NewKeyboard(codec *braille.Codec, theme viz.Theme) Keyboard {
	if codec == nil {
		codec = braille.Default()
	}
	return Keyboard{
		codec:   codec,
		theme:   theme,
		styles:  viz.NewStyles(theme),
		pending: braille.Cell(braille.BlankCell),
		width:   80,
		height:  24,
	}
}

func (k Keyboard) Init() tea.Cmd { return nil }

func (k Keyboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return k.handleKey(msg)
	case tea.WindowSizeMsg:
		k.width = msg.Width
		k.height = msg.Height
	}
	return k, nil
}

func (k Keyboard) handleKey(msg tea.KeyMsg) (Keyboard, tea.Cmd) {
	key := msg.String()
	if d, ok := perkinsKeys[key]; ok {
		k.pending = k.pending.Toggle(d)
		return k, nil
	}

	switch key {
	case "esc", "ctrl+c":
		k.quit = true
		return k, tea.Quit
	case " ", "space":
		k.cells = append(k.cells, rune(k.pending))
		k.pending = braille.Cell(braille.BlankCell)
	case "enter":
		k.commitPending()
		k.cells = append(k.cells, braille.BlankCell)
	case "backspace":
		if !k.pending.Blank() {
			k.pending = braille.Cell(braille.BlankCell)
		} else if len(k.cells) > 0 {
			k.cells = k.cells[:len(k.cells)-1]
		}
	case "c":
		k.commitPending()
		k.cells = append(k.cells, braille.CapitalMarker)
	case "n":
		k.commitPending()
		k.cells = append(k.cells, braille.NumericMarker)
	case "ctrl+u":
		k.cells = nil
		k.pending = braille.Cell(braille.BlankCell)
	case "tab":
		k.theme = viz.Next(k.theme)
		k.styles = viz.NewStyles(k.theme)
	}
	return k, nil
}

func (k *Keyboard) commitPending() {
	if !k.pending.Blank() {
		k.cells = append(k.cells, rune(k.pending))
		k.pending = braille.Cell(braille.BlankCell)
	}
}

// Braille returns the committed cells.
func (k Keyboard) Braille() string { return string(k.cells) }

// Text decodes the committed cells.
func (k Keyboard) Text() string { return k.codec.Decode(k.Braille()) }

// Pending returns the cell being composed.
func (k Keyboard) Pending() braille.Cell { return k.pending }

// Quit reports whether the user left the keyboard.
func (k Keyboard) Quit() bool { return k.quit }

func (k Keyboard) View() string {
	st := k.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("    " + viz.GradientText("b r a i l l e r", k.theme.Primary, k.theme.Accent) + "\n")
	b.WriteString("    " + st.Separator(30) + "\n\n")

	dots := k.pending.Dots()
	label := "-"
	if len(dots) > 0 {
		parts := make([]string, len(dots))
		for i, d := range dots {
			parts[i] = fmt.Sprint(d)
		}
		label = strings.Join(parts, "")
	}
	b.WriteString("    " + st.Label.Render("cell ") + st.Value.Render(label) + "\n")
	for _, row := range strings.Split(st.BigCells(k.pending.String(), 0), "\n") {
		b.WriteString("      " + row + "\n")
	}
	b.WriteString("\n")

	buf := k.Braille()
	text := k.Text()
	b.WriteString("    " + st.Label.Render("braille ") + st.Braille.Render(buf+"▋") + "\n")
	b.WriteString("    " + st.Label.Render("text    ") + st.Text.Render(text) + "\n")

	status := st.OK.Render("valid")
	switch {
	case len(k.cells) == 0:
		status = st.Warn.Render("empty")
	case !k.codec.IsValidBraille(buf):
		status = st.Err.Render("invalid")
	}
	b.WriteString("    " + st.Label.Render("status  ") + status +
		st.Subtle.Render(fmt.Sprintf("  %d cells", len(k.cells))) + "\n")
	b.WriteString("    " + st.Label.Render("theme   ") + st.Selected.Render(" "+k.theme.Name+" ") + "\n\n")

	b.WriteString(st.KeyHint.Render("    f d s j k l dots  space commit  enter blank  c capital  n number") + "\n")
	b.WriteString(st.KeyHint.Render("    backspace delete  ctrl+u clear  tab theme  esc done") + "\n")

	return b.String()
}

// RunKeyboard runs the keyboard until the user quits and returns the final
// model.
func RunKeyboard(codec *braille.Codec, theme viz.Theme) (Keyboard, error) {
	p := tea.NewProgram(NewKeyboard(codec, theme))
	final, err := p.Run()
	if err != nil {
		return Keyboard{}, fmt.Errorf("tui: %w", err)
	}
	return final.(Keyboard), nil
}
