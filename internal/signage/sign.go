// Package signage builds Braille placards: large-print text paired with its
// Braille transcription, rendered as SVG or as a terminal panel.
package signage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/brailler/internal/braille"
)

var ErrTitleRequired = errors.New("signage: title is required")

// Sign is a placard ready to render.
type Sign struct {
	Title        string
	Text         string
	Braille      string
	HighContrast bool
}

// New transcribes text with codec. Text that fails the convertibility
// check is rejected with the check's error.
func New(codec *braille.Codec, title, text string, highContrast bool) (Sign, error) {
	if codec == nil {
		codec = braille.Default()
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Sign{}, ErrTitleRequired
	}
	if err := codec.CanConvert(text).Err(); err != nil {
		return Sign{}, fmt.Errorf("signage: %w", err)
	}
	return Sign{
		Title:        title,
		Text:         text,
		Braille:      codec.Encode(text),
		HighContrast: highContrast,
	}, nil
}

// Lines splits the Braille text into rows of at most width cells, breaking
// at blank cells where possible.
func (s Sign) Lines(width int) []string {
	if width <= 0 {
		return []string{s.Braille}
	}
	words := strings.Split(s.Braille, string(braille.BlankCell))

	var lines []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
	}
	for _, w := range words {
		word := []rune(w)
		for len(word) > width {
			flush()
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		if len(cur) > 0 && len(cur)+1+len(word) > width {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, braille.BlankCell)
		}
		cur = append(cur, word...)
	}
	flush()
	return lines
}
