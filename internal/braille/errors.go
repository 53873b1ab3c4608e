package braille

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyText is reported by CanConvert for blank input.
	ErrEmptyText = errors.New("braille: text must not be empty")

	// ErrInvalidDot indicates a dot number outside 1..6.
	ErrInvalidDot = errors.New("braille: dot out of range (1-6)")

	// ErrNotCell indicates a rune outside the Braille pattern block.
	ErrNotCell = errors.New("braille: rune is not a braille cell")

	// ErrMalformedTable indicates a symbol table that violates its invariants.
	ErrMalformedTable = errors.New("braille: malformed symbol table")
)

// UnsupportedError lists characters that have no Braille mapping.
type UnsupportedError struct {
	Chars []string
}

func (e *UnsupportedError) Error() string {
	return "unsupported characters: " + strings.Join(e.Chars, ", ")
}
