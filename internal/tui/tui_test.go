package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/viz"
)

func press(k Keyboard, keys ...string) Keyboard {
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+u":
			msg = tea.KeyMsg{Type: tea.KeyCtrlU}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		m, _ := k.Update(msg)
		k = m.(Keyboard)
	}
	return k
}

func TestKeyboardComposesCells(t *testing.T) {
	k := NewKeyboard(nil, viz.ThemeDark)

	// h = dots 1 2 5, o = 1 3 5, l = 1 2 3, a = 1
	k = press(k,
		"c",
		"f", "d", "k", " ",
		"f", "s", "k", " ",
		"f", "d", "s", " ",
		"f", " ",
	)
	if got := k.Braille(); got != "⠨⠓⠕⠇⠁" {
		t.Errorf("braille = %q", got)
	}
	if got := k.Text(); got != "Hola" {
		t.Errorf("text = %q", got)
	}
}

func TestKeyboardToggleAndSpace(t *testing.T) {
	k := NewKeyboard(nil, viz.ThemeDark)

	k = press(k, "f", "f")
	if !k.Pending().Blank() {
		t.Errorf("double toggle should clear dot, pending %q", k.Pending())
	}

	k = press(k, " ")
	if k.Braille() != string(braille.BlankCell) {
		t.Errorf("space on empty cell should commit a blank, got %q", k.Braille())
	}
}

func TestKeyboardEnterAndMarkers(t *testing.T) {
	k := NewKeyboard(nil, viz.ThemeDark)

	k = press(k, "f", "enter", "n", "f", "d", " ")
	if got := k.Braille(); got != "⠁⠀⠼⠃" {
		t.Errorf("braille = %q", got)
	}
	if got := k.Text(); got != "a 2" {
		t.Errorf("text = %q", got)
	}
}

func TestKeyboardBackspace(t *testing.T) {
	k := NewKeyboard(nil, viz.ThemeDark)

	k = press(k, "f", " ", "d", "backspace")
	if !k.Pending().Blank() || k.Braille() != "⠁" {
		t.Errorf("first backspace should drop the pending cell: %q %q", k.Pending(), k.Braille())
	}
	k = press(k, "backspace", "backspace")
	if k.Braille() != "" {
		t.Errorf("buffer = %q, want empty", k.Braille())
	}

	k = press(k, "f", " ", "f", " ", "ctrl+u")
	if k.Braille() != "" {
		t.Error("ctrl+u should clear the buffer")
	}
}

func TestKeyboardQuitAndTheme(t *testing.T) {
	k := NewKeyboard(nil, viz.ThemeDark)

	k = press(k, "tab")
	if k.theme.Name != "light" {
		t.Errorf("tab should cycle theme, got %q", k.theme.Name)
	}

	m, cmd := k.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.(Keyboard).Quit() {
		t.Error("esc should quit")
	}
}

func TestKeyboardView(t *testing.T) {
	k := press(NewKeyboard(nil, viz.ThemeDark), "f", " ", "f", "s", "d", "j", "k", "l", " ")
	view := k.View()
	if !strings.Contains(view, "⠁⠿") {
		t.Error("view should show the buffer")
	}
	if !strings.Contains(view, "invalid") {
		t.Error("⠿ has no mapping and should be flagged")
	}
	if !strings.Contains(view, " dark ") {
		t.Error("view should name the active theme")
	}

	empty := NewKeyboard(nil, viz.ThemeDark).View()
	if !strings.Contains(empty, "empty") {
		t.Error("an empty buffer should be reported as empty")
	}
}

func TestLiveRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, nil, viz.NewStyles(viz.ThemeDark))

	if err := r.Run(context.Background(), strings.NewReader("hola\nmundo\n")); err != nil {
		t.Fatal(err)
	}
	if r.Lines() != 2 {
		t.Errorf("lines = %d", r.Lines())
	}
	for _, want := range []string{"⠓⠕⠇⠁", "⠍⠥⠝⠙⠕"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}

	out.Reset()
	r = NewLiveRenderer(&out, nil, viz.NewStyles(viz.ThemeDark)).Decoding(true)
	if err := r.Run(context.Background(), strings.NewReader("⠨⠓⠕⠇⠁\n")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hola\n" {
		t.Errorf("decoded = %q", out.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewLiveRenderer(&out, nil, viz.NewStyles(viz.ThemeDark)).Run(ctx, strings.NewReader("a\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLiveRendererLongLine(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, nil, viz.NewStyles(viz.ThemeDark))

	line := strings.Repeat("a", 100_000)
	if err := r.Run(context.Background(), strings.NewReader(line+"\nb\n")); err != nil {
		t.Fatalf("long line: %v", err)
	}
	if r.Lines() != 2 {
		t.Errorf("lines = %d, want 2", r.Lines())
	}
	if got := strings.Count(out.String(), "⠁"); got != 100_000 {
		t.Errorf("encoded %d cells, want 100000", got)
	}
}
